// Package apperror provides the unified error type for the service.
// Every handler resolves its failures into an *AppError and maps it to one
// HTTP response; nothing propagates past the handler boundary.
package apperror

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a short human-readable error message. It never carries
	// internal details or stack traces.
	Message string `json:"message"`
	// HTTPStatus is the status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, kept for logs only.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Constructors, one per taxonomy entry ---

// Unauthorized creates the generic 401 error. Every token failure mode
// (missing, malformed, bad signature, expired) produces this same error so
// the caller cannot tell which sub-reason applied.
func Unauthorized() *AppError {
	return &AppError{
		Code: ErrCodeUnauthorized, Message: "Invalid or missing token.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates the 403 error for a caller that is authenticated but
// does not own the target resource.
func Forbidden() *AppError {
	return &AppError{
		Code: ErrCodeForbidden, Message: "You don't have permission to perform this action.",
		HTTPStatus: http.StatusForbidden,
	}
}

// NotFound creates a 404 error for an absent record.
func NotFound(resource string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// EmailTaken creates the 400 error for an email already in use.
func EmailTaken() *AppError {
	return &AppError{
		Code: ErrCodeEmailTaken, Message: "This email address is already in use.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidCredentials creates the generic 400 login failure. Unknown email
// and wrong password must both go through here so the payloads are
// byte-identical.
func InvalidCredentials() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCredentials, Message: "Invalid email or password.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidCurrentPassword creates the 400 error for a password change where
// the submitted current password does not match the stored hash.
func InvalidCurrentPassword() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCurrentPassword, Message: "The current password is incorrect.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingFields creates the 400 error for empty required fields.
func MissingFields() *AppError {
	return &AppError{
		Code: ErrCodeMissingFields, Message: "All fields must be filled in.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidInput creates a 400 error for a body that could not be parsed.
func InvalidInput(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a 500 error. The cause is logged, never serialized.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
