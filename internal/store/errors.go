package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrListingNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write would break a uniqueness rule,
	// such as a second user with the same username.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a write references a record that does
	// not exist or violates a column constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrSchemaValidation is returned when the document produced by a write
	// does not satisfy the collection's schema. The wrapped message lists the
	// failing fields.
	ErrSchemaValidation = errors.New("schema validation failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPersonNotFound indicates that the requested person does not exist in the store.
	ErrPersonNotFound = fmt.Errorf("%w: person", ErrNotFound)

	// ErrListingNotFound indicates that the requested listing does not exist in the store.
	ErrListingNotFound = fmt.Errorf("%w: listing", ErrNotFound)

	// ErrApplicationNotFound indicates that the requested application does not exist in the store.
	ErrApplicationNotFound = fmt.Errorf("%w: application", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific errors wrap ErrNotFound, so a single check covers them.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error reports a uniqueness violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// SchemaError reports the fields of a document that failed schema validation.
type SchemaError struct {
	Collection string
	Messages   []string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	msg := e.Collection + " validation failed"
	for i, m := range e.Messages {
		if i == 0 {
			msg += ": " + m
			continue
		}
		msg += "; " + m
	}
	return msg
}

// Unwrap lets errors.Is match ErrSchemaValidation.
func (e *SchemaError) Unwrap() error {
	return ErrSchemaValidation
}
