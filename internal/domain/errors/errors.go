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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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
	// Geolocation failures, surfaced verbatim to the client
	ErrGeolocationUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"GEOLOCATION_UNSUPPORTED",
		"Geolocation is not supported",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission denied. Enable location in browser settings.",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_UNAVAILABLE",
		"Location information is unavailable.",
		"",
	)

	ErrGeolocationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"GEOLOCATION_TIMEOUT",
		"Location request timed out.",
		"",
	)

	ErrGeolocationUnknown = NewBaseError(
		http.StatusInternalServerError,
		"GEOLOCATION_UNKNOWN",
		"Failed to get your location",
		"",
	)

	// Discovery failures
	ErrDiscoveryExhausted = NewBaseError(
		http.StatusGatewayTimeout,
		"DISCOVERY_EXHAUSTED",
		"Service centre search failed or timed out. Try again later.",
		"",
	)

	// ErrUpstreamError marks a non-success status from an upstream service.
	// It is retried internally and never surfaced alone.
	ErrUpstreamError = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"Upstream service returned an error",
		"",
	)

	ErrEmptyBrand = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_BRAND",
		"Enter a car brand to locate service centres",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Discovery session not found or expired",
		"",
	)

	ErrInvalidSelection = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SELECTION",
		"Selected service centre is not in the current results",
		"",
	)

	ErrNoSelection = NewBaseError(
		http.StatusConflict,
		"NO_SELECTION",
		"Select a service centre first",
		"",
	)

	// Damage detection errors
	ErrDetectionFailed = NewBaseError(
		http.StatusBadGateway,
		"DETECTION_FAILED",
		"Damage detection failed",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Uploaded file is not a supported image",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
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
