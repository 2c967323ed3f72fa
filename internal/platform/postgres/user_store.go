package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

const userColumns = "id, username, email, hashed_password, role, created_at, updated_at"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx store.DBTX) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	if err := validateDocument(usersCollection, user); err != nil {
		log.Warn("user rejected by schema",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.HashedPassword, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create user",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("user created", slog.String("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx, "id", id)
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, "username", username)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email", email)
}

func (s *PostgresUserStore) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(userColumns).From(usersCollection).Where(sq.Eq{column: value}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("by", column))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("by", column),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return user, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(
	ctx context.Context,
	username string,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Update(usersCollection).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + userColumns)
	if patch.Email != nil {
		b = b.Set("email", *patch.Email)
	}
	if patch.HashedPassword != nil {
		b = b.Set("hashed_password", *patch.HashedPassword)
	}
	if patch.Role != nil {
		b = b.Set("role", string(*patch.Role))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var updated *domain.User
	err = store.InTx(ctx, s.db, func(q store.DBTX) error {
		u, err := scanUser(q.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrUserNotFound
			}
			return MapError(err)
		}
		if err := validateDocument(usersCollection, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		log.Warn("user update failed",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("user updated", slog.String("user_id", updated.ID))
	return updated, nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		log.Debug("user to delete not found", slog.String("username", username))
		return err
	}

	log.Info("user deleted", slog.String("username", username))
	return nil
}
