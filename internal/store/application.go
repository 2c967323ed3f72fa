package store

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// ApplicationStore defines the interface for application persistence.
type ApplicationStore interface {
	// Create saves a new application.
	// Returns ErrDuplicate if the person already applied to the listing and
	// ErrInvalidEntity if the person or listing does not exist.
	Create(ctx context.Context, application *domain.Application) error

	// GetByID retrieves an application by ID.
	// Returns ErrApplicationNotFound if the application does not exist.
	GetByID(ctx context.Context, id string) (*domain.Application, error)

	// FindByPersonID returns every application of a person.
	// Returns an empty slice when there are none.
	FindByPersonID(ctx context.Context, personID string) ([]*domain.Application, error)

	// FindByListingID returns every application to a listing.
	// Returns an empty slice when there are none.
	FindByListingID(ctx context.Context, listingID string) ([]*domain.Application, error)

	// GetByPair retrieves the application of personID to listingID.
	// Returns ErrApplicationNotFound if there is none.
	GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error)

	// Delete removes an application by ID.
	// Returns ErrApplicationNotFound if the application does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteByPair removes the application of personID to listingID in a
	// single statement and returns the removed record.
	// Returns ErrApplicationNotFound if there is none.
	DeleteByPair(ctx context.Context, personID, listingID string) (*domain.Application, error)
}
