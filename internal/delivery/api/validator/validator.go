// Package validator adapts go-playground/validator to echo and renders
// failures as per-field messages.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{6,18}$`)
)

// FieldError is one failed constraint, keyed by the JSON or query name of the field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned by Validate. It is rendered as a 400 "Validation errors" response.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Invalid reports field as failing without running a struct validation.
// Handlers use it for path and query values they parse themselves.
func Invalid(field string) error {
	return &Error{Fields: []FieldError{{Field: field, Message: messageFor(field, "")}}}
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator with the custom tags username, password_strength and phone.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("username", func(fl playground.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_strength", func(fl playground.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl playground.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate runs the struct's validate tags and collects every failure.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		field, rule := fe.Field(), fe.Field()
		// Element failures from dive come back as name[i].
		if base, _, indexed := strings.Cut(field, "["); indexed {
			field, rule = base, base+elementSuffix
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		fields = append(fields, FieldError{Field: field, Message: messageFor(rule, fe.Tag())})
	}

	return &Error{Fields: fields}
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}

func strongPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}
