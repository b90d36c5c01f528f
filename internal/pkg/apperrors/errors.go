package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// Session errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenMalformed  = errors.New("malformed token")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidClockAction = errors.New("invalid clock action")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMissingUpload      = errors.New("please select a requirement and file")

	// Upstream errors
	ErrUpstream            = errors.New("upstream request failed")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrPermissionDenied    = errors.New("permission denied")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// APIError is a non-2xx answer from the OJT REST API.
// Message carries the body's "message" field and is empty when the body had none.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

// Error implements error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the upstream status onto the sentinel errors so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrResourceNotFound
	default:
		return ErrUpstream
	}
}

// BannerMessage picks the single user-facing line for a failed call. A message already chosen
// by a CustomError wins, then the API's own message, else fallback.
func BannerMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}

	return fallback
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
