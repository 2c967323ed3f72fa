package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// AuthToken is the result of a successful login.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserService provides account operations.
type UserService interface {
	// Register stores a new user whose password is already hashed.
	Register(ctx context.Context, user *domain.User) (*domain.User, error)

	// Authenticate checks username and password and issues a bearer token.
	// Unknown usernames and wrong passwords both fail with KindUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*AuthToken, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies a partial update to the user with username.
	Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error)

	// UpdateProfile applies userPatch to the user and personPatch to the
	// profile of username in one transaction. Empty patches are skipped and
	// their result is nil. Either both updates persist or neither does.
	UpdateProfile(
		ctx context.Context,
		username string,
		userPatch domain.UserPatch,
		personPatch domain.PersonPatch,
	) (*domain.User, *domain.Person, error)

	// Delete removes the user with username together with their profile.
	Delete(ctx context.Context, username string) error
}

// userService implements UserService
type userService struct {
	users      store.UserStore
	persons    store.PersonStore
	db         *sql.DB
	jwtService auth.JWTService
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	users store.UserStore,
	persons store.PersonStore,
	db *sql.DB,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil || persons == nil || db == nil || jwtService == nil || verifier == nil {
		return nil, domain.NewValidationError("dependencies", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		users:      users,
		persons:    persons,
		db:         db,
		jwtService: jwtService,
		verifier:   verifier,
		logger:     logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	const op = "user.register"
	if err := s.users.Create(ctx, user); err != nil {
		return nil, classify(ctx, s.logger, op, userResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("user registered",
		slog.String("operation", op),
		slog.String("user_id", user.ID))
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *userService) Authenticate(ctx context.Context, username, password string) (*AuthToken, error) {
	const op = "user.authenticate"
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("operation", op))

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Info("authentication failed: unknown username")
			return nil, Unauthorized(op, err)
		}
		return nil, classify(ctx, s.logger, op, userResource, err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Info("authentication failed: password mismatch", slog.String("user_id", user.ID))
		return nil, Unauthorized(op, err)
	}

	token, expiresAt, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		log.Error("failed to issue token", slog.String("error", err.Error()))
		return nil, ServerError(op, err)
	}

	log.Info("user authenticated", slog.String("user_id", user.ID))
	return &AuthToken{Token: token, ExpiresAt: expiresAt}, nil
}

// GetByUsername implements UserService.GetByUsername
func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, classify(ctx, s.logger, "user.get_by_username", userResource, err)
	}
	return user, nil
}

// GetByEmail implements UserService.GetByEmail
func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, classify(ctx, s.logger, "user.get_by_email", userResource, err)
	}
	return user, nil
}

// Update implements UserService.Update
func (s *userService) Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.users.Update(ctx, username, patch)
	if err != nil {
		return nil, classify(ctx, s.logger, "user.update", userResource, err)
	}
	return user, nil
}

// UpdateProfile implements UserService.UpdateProfile
func (s *userService) UpdateProfile(
	ctx context.Context,
	username string,
	userPatch domain.UserPatch,
	personPatch domain.PersonPatch,
) (*domain.User, *domain.Person, error) {
	const op = "user.update_profile"

	var (
		user   *domain.User
		person *domain.Person
	)
	failed := userResource
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		if !userPatch.IsEmpty() {
			if user, err = s.users.WithTx(tx).Update(ctx, username, userPatch); err != nil {
				return err
			}
		}
		if !personPatch.IsEmpty() {
			failed = personResource
			if person, err = s.persons.WithTx(tx).UpdateByUsername(ctx, username, personPatch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, classify(ctx, s.logger, op, failed, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("profile updated",
		slog.String("operation", op),
		slog.String("username", username))
	return user, person, nil
}

// Delete implements UserService.Delete
// The profile and the account are removed in one transaction; a user
// without a profile is still deleted.
func (s *userService) Delete(ctx context.Context, username string) error {
	const op = "user.delete"

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.persons.WithTx(tx).DeleteByUsername(ctx, username); err != nil && !store.IsNotFoundError(err) {
			return err
		}
		return s.users.WithTx(tx).Delete(ctx, username)
	})
	if err != nil {
		return classify(ctx, s.logger, op, userResource, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user deleted",
		slog.String("operation", op),
		slog.String("username", username))
	return nil
}
