package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string  `json:"username" validate:"required,min=3,max=50,username"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,password_strength"`
	Phone    string  `json:"contact_phone" validate:"omitempty,phone"`
	Radius   *int    `json:"notification_radius_miles" validate:"omitempty,min=1,max=50"`
	Photo    *string `json:"profile_photo_url" validate:"omitempty,url"`
}

type truckProfile struct {
	Cuisines []string `json:"cuisine_types" validate:"required,min=1,dive,min=1,max=100"`
	Phone    string   `json:"contact_phone" validate:"omitempty,phone"`
	Logo     string   `json:"logo_url" validate:"omitempty,url,max=500"`
	Email    string   `json:"email" validate:"omitempty,email,max=255"`
	Price    *float64 `json:"price" validate:"omitempty,min=0,max=99999999.99"`
}

type nearby struct {
	Lat *float64 `query:"lat" validate:"required,min=-90,max=90"`
}

func intPtr(v int) *int { return &v }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *Error
	require.ErrorAs(t, err, &verr)

	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signup{
		Username: "taco_fan",
		Email:    "fan@example.com",
		Password: "Sup3rSecret",
		Phone:    "+1 (555) 123-4567",
		Radius:   intPtr(10),
	})
	assert.NoError(t, err)
}

func TestValidate_FieldMessages(t *testing.T) {
	v := New()
	bad := "not a url"

	err := v.Validate(&signup{
		Username: "no spaces",
		Email:    "nope",
		Password: "alllowercase1",
		Phone:    "call me",
		Radius:   intPtr(51),
		Photo:    &bad,
	})

	fields := fieldsOf(t, err)
	assert.Equal(t, "Username can only contain letters, numbers, and underscores", fields["username"])
	assert.Equal(t, "Valid email is required", fields["email"])
	assert.Equal(t, "Password must contain at least one uppercase letter, one lowercase letter, and one number", fields["password"])
	assert.Equal(t, "Valid phone number is required", fields["contact_phone"])
	assert.Equal(t, "Notification radius must be between 1 and 50 miles", fields["notification_radius_miles"])
	assert.Equal(t, "Profile photo URL must be a valid URL", fields["profile_photo_url"])
}

func TestValidate_LengthAndRequired(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Username: "ab", Email: "a@b.co"})

	fields := fieldsOf(t, err)
	assert.Equal(t, "Username must be between 3 and 50 characters", fields["username"])
	assert.Equal(t, "Password is required", fields["password"])
	assert.NotContains(t, fields, "email")
}

func TestValidate_QueryTagNames(t *testing.T) {
	v := New()

	fields := fieldsOf(t, v.Validate(&nearby{}))
	assert.Equal(t, "Valid latitude is required (-90 to 90)", fields["lat"])

	zero := 0.0
	assert.NoError(t, v.Validate(&nearby{Lat: &zero}))
}

func TestInvalid(t *testing.T) {
	fields := fieldsOf(t, Invalid("truck_id"))
	assert.Equal(t, "Valid truck ID is required", fields["truck_id"])

	fields = fieldsOf(t, Invalid("mystery_field"))
	assert.Equal(t, "mystery field is invalid", fields["mystery_field"])
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Password1": true,
		"password1": false,
		"PASSWORD1": false,
		"Password":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, strongPassword(in), in)
	}
}

func TestValidate_ColumnLimits(t *testing.T) {
	v := New()
	price := func(p float64) *float64 { return &p }
	longURL := "https://example.com/" + strings.Repeat("a", 481)
	longEmail := strings.Repeat("a", 250) + "@b.com"

	tests := []struct {
		name      string
		input     truckProfile
		wantField string
		wantMsg   string
	}{
		{
			name:      "phone of 21 characters",
			input:     truckProfile{Cuisines: []string{"Mexican"}, Phone: "+1 (555) 123-4567 890"},
			wantField: "contact_phone",
			wantMsg:   "Valid phone number is required",
		},
		{
			name:      "cuisine over 100 characters",
			input:     truckProfile{Cuisines: []string{"Thai", strings.Repeat("a", 150)}},
			wantField: "cuisine_types",
			wantMsg:   "Each cuisine type must be between 1 and 100 characters",
		},
		{
			name:      "empty cuisine entry",
			input:     truckProfile{Cuisines: []string{""}},
			wantField: "cuisine_types",
			wantMsg:   "Each cuisine type must be between 1 and 100 characters",
		},
		{
			name:      "url over 500 characters",
			input:     truckProfile{Cuisines: []string{"Thai"}, Logo: longURL},
			wantField: "logo_url",
			wantMsg:   "Logo URL must not exceed 500 characters",
		},
		{
			name:      "email over 255 characters",
			input:     truckProfile{Cuisines: []string{"Thai"}, Email: longEmail},
			wantField: "email",
			wantMsg:   "Email must not exceed 255 characters",
		},
		{
			name:      "price beyond decimal(10,2)",
			input:     truckProfile{Cuisines: []string{"Thai"}, Price: price(100000000)},
			wantField: "price",
			wantMsg:   "Price must not exceed 99999999.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldsOf(t, v.Validate(&tt.input))
			assert.Equal(t, tt.wantMsg, fields[tt.wantField])
		})
	}

	t.Run("values at the limits pass", func(t *testing.T) {
		err := v.Validate(&truckProfile{
			Cuisines: []string{strings.Repeat("a", 100)},
			Phone:    "+1 (555) 123-4567 89",
			Logo:     "https://example.com/" + strings.Repeat("a", 480),
			Price:    price(99999999.99),
		})
		assert.NoError(t, err)
	})
}
