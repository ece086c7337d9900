package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeConfiguration indicates the remote backend was required but
	// not configured. Never recovered, never downgraded to mock data.
	ErrorTypeConfiguration ErrorType = "CONFIGURATION"

	// ErrorTypeQueryFailure indicates a remote read failed and could not
	// be recovered by the fallback policy
	ErrorTypeQueryFailure ErrorType = "QUERY_FAILURE"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
	}
}

// NewQueryFailure wraps a failed remote read with the entity and operation
// that issued it
func NewQueryFailure(entity, operation string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeQueryFailure,
		Message: fmt.Sprintf("%s: %s failed", entity, operation),
		Err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
