package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

const applicationColumns = "id, person_id, listing_id, created_at, updated_at"

// PostgresApplicationStore implements the store.ApplicationStore interface
// using a PostgreSQL database as the storage backend. The (person_id,
// listing_id) pair is unique at the table level.
type PostgresApplicationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresApplicationStore creates a new PostgreSQL implementation of the ApplicationStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresApplicationStore(db store.DBTX, logger *slog.Logger) *PostgresApplicationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresApplicationStore{
		db:     db,
		logger: logger.With(slog.String("component", "application_store")),
	}
}

// Ensure PostgresApplicationStore implements store.ApplicationStore interface
var _ store.ApplicationStore = (*PostgresApplicationStore)(nil)

func scanApplication(row rowScanner) (*domain.Application, error) {
	var a domain.Application
	if err := row.Scan(&a.ID, &a.PersonID, &a.ListingID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create implements store.ApplicationStore.Create
func (s *PostgresApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	application.CreatedAt, application.UpdatedAt = now, now

	if err := validateDocument(applicationsCollection, application); err != nil {
		log.Warn("application rejected by schema",
			slog.String("application_id", application.ID),
			slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (`+applicationColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		application.ID, application.PersonID, application.ListingID, application.CreatedAt, application.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create application",
			slog.String("application_id", application.ID),
			slog.String("person_id", application.PersonID),
			slog.String("listing_id", application.ListingID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("application created",
		slog.String("application_id", application.ID),
		slog.String("listing_id", application.ListingID))
	return nil
}

func (s *PostgresApplicationStore) getOne(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	a, err := scanApplication(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("application not found")
			return nil, store.ErrApplicationNotFound
		}
		log.Error("failed to get application", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return a, nil
}

func (s *PostgresApplicationStore) find(ctx context.Context, query string, args ...any) ([]*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query applications", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			log.Error("failed to scan application", slog.String("error", err.Error()))
			return nil, err
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return applications, nil
}

// GetByID implements store.ApplicationStore.GetByID
func (s *PostgresApplicationStore) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return s.getOne(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
}

// GetByPair implements store.ApplicationStore.GetByPair
func (s *PostgresApplicationStore) GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error) {
	return s.getOne(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE person_id = $1 AND listing_id = $2`,
		personID, listingID)
}

// FindByPersonID implements store.ApplicationStore.FindByPersonID
func (s *PostgresApplicationStore) FindByPersonID(ctx context.Context, personID string) ([]*domain.Application, error) {
	return s.find(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE person_id = $1 ORDER BY created_at DESC, id DESC`,
		personID)
}

// FindByListingID implements store.ApplicationStore.FindByListingID
func (s *PostgresApplicationStore) FindByListingID(ctx context.Context, listingID string) ([]*domain.Application, error) {
	return s.find(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE listing_id = $1 ORDER BY created_at DESC, id DESC`,
		listingID)
}

// Delete implements store.ApplicationStore.Delete
func (s *PostgresApplicationStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete application",
			slog.String("application_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrApplicationNotFound); err != nil {
		log.Debug("application to delete not found", slog.String("application_id", id))
		return err
	}

	log.Info("application deleted", slog.String("application_id", id))
	return nil
}

// DeleteByPair implements store.ApplicationStore.DeleteByPair
func (s *PostgresApplicationStore) DeleteByPair(
	ctx context.Context,
	personID, listingID string,
) (*domain.Application, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	a, err := s.getOne(ctx,
		`DELETE FROM applications WHERE person_id = $1 AND listing_id = $2 RETURNING `+applicationColumns,
		personID, listingID)
	if err != nil {
		return nil, err
	}

	log.Info("application deleted", slog.String("application_id", a.ID))
	return a, nil
}
