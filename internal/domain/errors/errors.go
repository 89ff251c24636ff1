package errors

import (
	"net/http"

	"bizdir/internal/errors"
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

// Predefined error types.
//
// Conflict-class errors map to 400, matching the public API contract for
// uniqueness violations.
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"admin role required",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no profile exists for this account",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"a user with this email already exists",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	ErrBusinessNameTaken = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_NAME_TAKEN",
		"a business with this name already exists",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"edit request not found",
		"",
	)

	ErrSignupNotFound = NewBaseError(
		http.StatusNotFound,
		"SIGNUP_NOT_FOUND",
		"signup request not found",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"identifier must be a 24-character hex string",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidRecipient = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECIPIENT",
		"recipient must be a direct address or a business-type broadcast",
		"",
	)

	ErrRelayFailed = NewBaseError(
		http.StatusInternalServerError,
		"RELAY_FAILED",
		"mail relay rejected the message",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the
// AppError interface. Raw driver details stay in Details for logs; the
// client-facing message is generic.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "document store operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
