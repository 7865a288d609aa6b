// Package errors defines the structured error type used across the RFID admin
// service and the constructors that map domain failures to HTTP status codes.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes surfaced in API responses.
const (
	CodeInternal          = "internal_error"
	CodeInvalidRequest    = "invalid_request"
	CodeInvalidTimeFormat = "invalid_time_format"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeStoreUnavailable  = "store_unavailable"
	CodeRateLimited       = "rate_limit_exceeded"
)

// AppError is a structured application error carrying an API error code and
// the HTTP status it should be surfaced with.
type AppError struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// New creates an AppError with an explicit code and HTTP status.
func New(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// AsAppError unwraps err into an *AppError if one is anywhere in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ErrInvalidRequest reports a malformed or incomplete client request.
func ErrInvalidRequest(message string) *AppError {
	return New(CodeInvalidRequest, http.StatusBadRequest, message)
}

// ErrInvalidTimeFormat reports a date-range bound that does not conform to
// the "YYYY-MM-DD HH:mm:ss TIMEZONE" contract. The field name identifies
// which bound was malformed.
func ErrInvalidTimeFormat(field, message string) *AppError {
	return New(CodeInvalidTimeFormat, http.StatusBadRequest,
		fmt.Sprintf("invalid %s: %s", field, message))
}

// ErrUnauthorized reports a missing or failed authentication.
func ErrUnauthorized(message string) *AppError {
	return New(CodeUnauthorized, http.StatusUnauthorized, message)
}

// ErrForbidden reports an authenticated but disallowed request.
func ErrForbidden(message string) *AppError {
	return New(CodeForbidden, http.StatusForbidden, message)
}

// ErrNotFound reports a missing resource.
func ErrNotFound(resource string) *AppError {
	return New(CodeNotFound, http.StatusNotFound, resource+" not found")
}

// ErrConflict reports a uniqueness or state conflict.
func ErrConflict(message string) *AppError {
	return New(CodeConflict, http.StatusConflict, message)
}

// ErrStoreUnavailable wraps a backing-store failure. The cause is retained
// for logs but never leaked to API clients.
func ErrStoreUnavailable(cause error) *AppError {
	return New(CodeStoreUnavailable, http.StatusInternalServerError,
		"storage backend unavailable").WithCause(cause)
}

// ErrInternal wraps an unexpected failure.
func ErrInternal(cause error) *AppError {
	return New(CodeInternal, http.StatusInternalServerError,
		"internal server error").WithCause(cause)
}
