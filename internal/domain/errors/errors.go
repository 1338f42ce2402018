package errors

import (
	"net/http"

	"wayfinder/internal/errors"
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
	// Configuration errors
	ErrConfigurationMissing = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_MISSING",
		"Directions backend is not configured",
		"",
	)

	// Backend connectivity: the transport could not reach the host at all,
	// distinguished from an HTTP error response
	ErrBackendUnreachable = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKEND_UNREACHABLE",
		"Cannot connect to the directions service",
		"",
	)

	// Backend responded with a non-success status
	ErrBackendFailure = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_FAILURE",
		"The directions service returned an error",
		"",
	)

	// Route errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"No route found between the selected rooms",
		"",
	)

	// Building/floor errors
	ErrBuildingNotFound = NewBaseError(
		http.StatusNotFound,
		"BUILDING_NOT_FOUND",
		"No indoor maps exist for this building",
		"",
	)

	ErrFloorPlanUnavailable = NewBaseError(
		http.StatusNotFound,
		"FLOOR_PLAN_UNAVAILABLE",
		"Floor plan unavailable",
		"",
	)

	// Selection errors
	ErrInvalidSelection = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SELECTION",
		"Select a building before choosing rooms",
		"",
	)

	// Share errors
	ErrShareFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHARE_FAILED",
		"Could not generate a share code",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
)
