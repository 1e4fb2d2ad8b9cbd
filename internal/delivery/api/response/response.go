// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	"trucktrace/internal/delivery/api/validator"
	domainerrors "trucktrace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    any                    `json:"data,omitempty"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
	Code    string                 `json:"code,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Code:    errorCode,
	})
}

// ValidationError returns a 400 listing every failed field
func ValidationError(c echo.Context, fields []validator.FieldError) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: domainerrors.ErrValidationFailed.Message(),
		Errors:  fields,
		Code:    domainerrors.ErrValidationFailed.ErrorCode(),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError renders validation and application errors. Database failures
// and anything else are returned so the central error handler can log them.
func HandleAppError(c echo.Context, err error) error {
	var verr *validator.Error
	if errors.As(err, &verr) {
		return ValidationError(c, verr.Fields)
	}

	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return errors.WithStack(err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
