package store

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// PersonStore defines the interface for personal profile persistence.
type PersonStore interface {
	// Create saves a new person.
	// Returns ErrDuplicate if the username already has a profile.
	Create(ctx context.Context, person *domain.Person) error

	// GetByID retrieves a person by ID.
	// Returns ErrPersonNotFound if the person does not exist.
	GetByID(ctx context.Context, id string) (*domain.Person, error)

	// GetByUsername retrieves the profile belonging to username.
	// Returns ErrPersonNotFound if there is none.
	GetByUsername(ctx context.Context, username string) (*domain.Person, error)

	// UpdateByUsername applies patch to the profile of username and returns
	// the updated record. History slices in the patch replace the stored ones.
	// Returns ErrPersonNotFound if there is no profile.
	UpdateByUsername(ctx context.Context, username string, patch domain.PersonPatch) (*domain.Person, error)

	// DeleteByUsername removes the profile of username.
	// Returns ErrPersonNotFound if there is none.
	DeleteByUsername(ctx context.Context, username string) error

	// WithTx returns a PersonStore that runs its statements on tx.
	WithTx(tx DBTX) PersonStore
}
