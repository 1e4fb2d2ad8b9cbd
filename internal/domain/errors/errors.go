package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation errors",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
		"",
	)

	// Authentication-related errors
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"Access denied. No token provided.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token.",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired.",
		"",
	)

	ErrTokenUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_USER_NOT_FOUND",
		"Invalid token. User not found.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUseOwnerPortal = NewBaseError(
		http.StatusUnauthorized,
		"USE_OWNER_PORTAL",
		"Please use the owner login portal",
		"",
	)

	ErrUseCustomerPortal = NewBaseError(
		http.StatusUnauthorized,
		"USE_CUSTOMER_PORTAL",
		"Please use the customer login portal",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusUnauthorized,
		"CURRENT_PASSWORD_INCORRECT",
		"Current password is incorrect",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired reset token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Authorization-related errors
	ErrOwnerRequired = NewBaseError(
		http.StatusForbidden,
		"OWNER_REQUIRED",
		"Access denied. Food truck owner privileges required.",
		"",
	)

	ErrTruckOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"TRUCK_OWNERSHIP_VIOLATION",
		"Access denied. You can only update your own truck.",
		"",
	)

	ErrTruckDeleteOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"TRUCK_OWNERSHIP_VIOLATION",
		"Access denied. You can only delete your own truck.",
		"",
	)

	ErrLocationOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"LOCATION_OWNERSHIP_VIOLATION",
		"Access denied. You can only manage your own truck's locations.",
		"",
	)

	ErrMenuItemOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"MENU_ITEM_OWNERSHIP_VIOLATION",
		"Access denied. You can only manage your own truck's menu.",
		"",
	)

	ErrDeviceOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"Access denied. You can only manage your own devices.",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	// Truck-related errors
	ErrTruckNotFound = NewBaseError(
		http.StatusNotFound,
		"TRUCK_NOT_FOUND",
		"Food truck not found",
		"",
	)

	ErrOwnerTruckNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNER_TRUCK_NOT_FOUND",
		"No food truck found for this owner",
		"",
	)

	ErrTruckAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TRUCK_ALREADY_EXISTS",
		"You already have a registered food truck",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrInvalidSchedule = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCHEDULE",
		"scheduled_end must be after scheduled_start",
		"",
	)

	ErrCurrentLocationConflict = NewBaseError(
		http.StatusConflict,
		"CURRENT_LOCATION_CONFLICT",
		"Another location was set as current at the same time, please retry",
		"",
	)

	// Menu-related errors
	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	// Favorite-related errors
	ErrAlreadyFavorited = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_FAVORITED",
		"Truck is already in your favorites",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Notifier errors
	ErrInvalidEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT",
		"Malformed push message",
		"",
	)

	ErrDeliveryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DELIVERY_UNAVAILABLE",
		"Notification delivery temporarily unavailable",
		"",
	)

	// General errors
	ErrDuplicateEntry = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ENTRY",
		"Duplicate entry",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests from this IP, please try again later.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Cause returns the driver error for pkg/errors
func (e *DatabaseExecuteError) Cause() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
