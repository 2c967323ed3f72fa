package store

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// ListingStore defines the interface for job listing persistence.
type ListingStore interface {
	// Create saves a new listing.
	Create(ctx context.Context, listing *domain.Listing) error

	// GetByID retrieves a listing by ID.
	// Returns ErrListingNotFound if the listing does not exist.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// Find returns every listing matching filter, newest first.
	// Returns an empty slice when nothing matches.
	Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)

	// Update applies patch to the listing and returns the updated record.
	// Returns ErrListingNotFound if the listing does not exist.
	Update(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error)

	// Delete removes a listing and, through the foreign key, its applications.
	// Returns ErrListingNotFound if the listing does not exist.
	Delete(ctx context.Context, id string) error
}
