// Package apierrors defines the error taxonomy surfaced by the HTTP layer.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	TypeValidation      ErrorType = "validation"
	TypeUnauthorized    ErrorType = "unauthorized"
	TypeForbidden       ErrorType = "forbidden"
	TypeNotFound        ErrorType = "not_found"
	TypeConflict        ErrorType = "conflict"
	TypeTooManyRequests ErrorType = "too_many_requests"
	TypeInternal        ErrorType = "internal"
	TypeUnavailable     ErrorType = "unavailable"
)

// FieldError is a single failed field of a validated request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a structured error carrying its HTTP status
type APIError struct {
	Type       ErrorType
	Message    string
	Fields     []FieldError
	HTTPStatus int
	Cause      error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// New creates an API error
func New(errorType ErrorType, message string, httpStatus int) *APIError {
	return &APIError{Type: errorType, Message: message, HTTPStatus: httpStatus}
}

// BadRequest is a validation error for input that could not be parsed at all
func BadRequest(message string) *APIError {
	return New(TypeValidation, message, http.StatusBadRequest)
}

// Validation creates a 422 error listing the failed fields
func Validation(message string, fields []FieldError) *APIError {
	e := New(TypeValidation, message, http.StatusUnprocessableEntity)
	e.Fields = fields
	return e
}

// Unauthorized creates an authentication error
func Unauthorized(message string) *APIError {
	return New(TypeUnauthorized, message, http.StatusUnauthorized)
}

// Forbidden creates an authorization error
func Forbidden(message string) *APIError {
	return New(TypeForbidden, message, http.StatusForbidden)
}

// NotFound creates a not found error for resource
func NotFound(resource string) *APIError {
	return New(TypeNotFound, resource+" not found", http.StatusNotFound)
}

// Conflict creates a conflict error
func Conflict(message string) *APIError {
	return New(TypeConflict, message, http.StatusConflict)
}

// TooManyRequests creates a rate limit error
func TooManyRequests(message string) *APIError {
	return New(TypeTooManyRequests, message, http.StatusTooManyRequests)
}

// Unavailable is returned when an optional backing service is not configured
func Unavailable(message string) *APIError {
	return New(TypeUnavailable, message, http.StatusServiceUnavailable)
}

// Internal wraps an unexpected failure. Message is what gets logged; clients
// only ever see a generic text.
func Internal(message string, cause error) *APIError {
	e := New(TypeInternal, message, http.StatusInternalServerError)
	e.Cause = cause
	return e
}

// From returns err as an *APIError, wrapping unknown errors as internal.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("unhandled error", err)
}
