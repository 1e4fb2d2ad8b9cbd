package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	mockUsecase "trucktrace/internal/mocks/usecase"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: discardLogger()}), uc
}

func TestAuthHandler_RegisterCustomer(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/register/customer", h.RegisterCustomer)

	user := &entity.User{ID: uuid.New(), Username: "taco_fan", Email: "fan@example.com"}
	uc.EXPECT().
		RegisterCustomer(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterCustomerInput) bool {
			return in.Email == "fan@example.com" && in.NotificationRadiusMiles != nil && *in.NotificationRadiusMiles == 10
		})).
		Return(&usecase.AuthOutput{User: user, Token: "jwt"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/auth/register/customer",
		`{"username":"taco_fan","email":"fan@example.com","password":"Sup3rSecret","notification_radius_miles":10}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Customer registration successful", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "jwt", data["token"])
	assert.NotContains(t, data, "truck")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_RegisterCustomer_ValidationErrors(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/register/customer", h.RegisterCustomer)

	rec := doRequest(e, http.MethodPost, "/api/auth/register/customer",
		`{"username":"a b","email":"nope","password":"weakpassword"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation errors", env.Message)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)

	fields := fieldMessages(env)
	assert.Equal(t, "Username can only contain letters, numbers, and underscores", fields["username"])
	assert.Equal(t, "Valid email is required", fields["email"])
	assert.Contains(t, fields["password"], "uppercase")
}

func TestAuthHandler_RegisterOwner(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/register/owner", h.RegisterOwner)

	t.Run("missing truck fields", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/auth/register/owner",
			`{"username":"chef","email":"chef@example.com","password":"Sup3rSecret","business_name":"X"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldMessages(decode(t, rec))
		assert.Equal(t, "Business name must be between 2 and 255 characters", fields["business_name"])
		assert.Equal(t, "Truck name must be between 2 and 255 characters", fields["truck_name"])
		assert.Equal(t, "At least one cuisine type must be selected", fields["cuisine_types"])
	})

	t.Run("creates owner and truck", func(t *testing.T) {
		user := &entity.User{ID: uuid.New()}
		truck := &entity.Truck{ID: uuid.New(), OwnerID: user.ID, TruckName: "Taco Wheels"}
		uc.EXPECT().
			RegisterOwner(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterOwnerInput) bool {
				return in.Truck.TruckName == "Taco Wheels" && len(in.Truck.CuisineTypes) == 1 && in.Truck.SocialLinks["ig"] == "@tacos"
			})).
			Return(&usecase.AuthOutput{User: user, Truck: truck, Token: "jwt"}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/auth/register/owner",
			`{"username":"chef","email":"chef@example.com","password":"Sup3rSecret",
			  "business_name":"Chef LLC","truck_name":"Taco Wheels","cuisine_types":["Mexican"],
			  "social_links":{"ig":"@tacos"}}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Owner registration successful", decode(t, rec).Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/login/customer", h.LoginCustomer)
	e.POST("/api/auth/login/owner", h.LoginOwner)

	t.Run("owner at customer portal", func(t *testing.T) {
		uc.EXPECT().LoginCustomer(mock.Anything, &usecase.LoginInput{Email: "chef@example.com", Password: "Sup3rSecret"}).
			Return(nil, errors.WithStack(domainerrors.ErrUseOwnerPortal)).Once()

		rec := doRequest(e, http.MethodPost, "/api/auth/login/customer", `{"email":"chef@example.com","password":"Sup3rSecret"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Please use the owner login portal", env.Message)
		assert.Equal(t, "USE_OWNER_PORTAL", env.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc.EXPECT().LoginOwner(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

		rec := doRequest(e, http.MethodPost, "/api/auth/login/owner", `{"email":"chef@example.com","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", decode(t, rec).Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/auth/login/owner", `{"email":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)
	e := newTestEcho()

	caller := customer()
	e.GET("/api/auth/me", h.Me, withPrincipal(caller))
	e.GET("/api/auth/me-anon", h.Me)

	rec := doRequest(e, http.MethodGet, "/api/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Contains(t, data, "truck")
	assert.Nil(t, data["truck"])

	rec = doRequest(e, http.MethodGet, "/api/auth/me-anon", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided.", decode(t, rec).Message)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/forgot-password", h.ForgotPassword)

	uc.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(&usecase.ForgotPasswordOutput{}, nil).Once()
	uc.EXPECT().ForgotPassword(mock.Anything, "dev@example.com").Return(&usecase.ForgotPasswordOutput{ResetToken: "reset"}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "If the email exists, a reset link has been sent", env.Message)
	assert.Empty(t, env.Data)

	rec = doRequest(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"dev@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reset_token":"reset"}`, string(decode(t, rec).Data))
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	e := newTestEcho()
	e.POST("/api/auth/reset-password", h.ResetPassword)

	uc.EXPECT().ResetPassword(mock.Anything, "stale", "N3wPassword").
		Return(errors.WithStack(domainerrors.ErrResetTokenInvalid)).Once()

	rec := doRequest(e, http.MethodPost, "/api/auth/reset-password", `{"token":"stale","new_password":"N3wPassword"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired reset token", decode(t, rec).Message)
}
