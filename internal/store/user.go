package store

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user.
	// Returns ErrDuplicate if the username or email is taken and
	// ErrSchemaValidation if the record does not satisfy the users schema.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies patch to the user with the given username and returns
	// the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error)

	// Delete removes the user with the given username.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, username string) error

	// WithTx returns a UserStore that runs its statements on tx.
	WithTx(tx DBTX) UserStore
}
