// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain record fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a 24-character
	// lowercase hexadecimal string.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEnum is returned when a string does not belong to the closed
	// value set of an enum.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidAmount is returned when a salary amount is not a non-negative number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ValidationError carries the name of the offending field alongside the
// reason it was rejected.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
