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

const personColumns = "id, username, first_name, last_name, phone, address, date_of_birth, " +
	"education, work_experience, created_at, updated_at"

// PostgresPersonStore implements the store.PersonStore interface
// using a PostgreSQL database as the storage backend. Education and work
// history are kept in JSONB columns.
type PostgresPersonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPersonStore creates a new PostgreSQL implementation of the PersonStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPersonStore(db store.DBTX, logger *slog.Logger) *PostgresPersonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPersonStore{
		db:     db,
		logger: logger.With(slog.String("component", "person_store")),
	}
}

// Ensure PostgresPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*PostgresPersonStore)(nil)

// WithTx implements store.PersonStore.WithTx
func (s *PostgresPersonStore) WithTx(tx store.DBTX) store.PersonStore {
	return &PostgresPersonStore{db: tx, logger: s.logger}
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var (
		p         domain.Person
		dob       sql.NullTime
		education []byte
		work      []byte
	)
	err := row.Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.Phone, &p.Address,
		&dob, &education, &work, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		t := dob.Time.UTC()
		p.DateOfBirth = &t
	}

	p.Education = []domain.Education{}
	p.WorkExperience = []domain.WorkExperience{}
	if err := decodeJSON(education, &p.Education); err != nil {
		return nil, err
	}
	if err := decodeJSON(work, &p.WorkExperience); err != nil {
		return nil, err
	}
	return &p, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Create implements store.PersonStore.Create
func (s *PostgresPersonStore) Create(ctx context.Context, person *domain.Person) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	person.CreatedAt, person.UpdatedAt = now, now
	if person.Education == nil {
		person.Education = []domain.Education{}
	}
	if person.WorkExperience == nil {
		person.WorkExperience = []domain.WorkExperience{}
	}

	if err := validateDocument(personsCollection, person); err != nil {
		log.Warn("person rejected by schema",
			slog.String("person_id", person.ID),
			slog.String("error", err.Error()))
		return err
	}

	education, err := jsonParam(person.Education)
	if err != nil {
		return err
	}
	work, err := jsonParam(person.WorkExperience)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO persons (`+personColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		person.ID, person.Username, person.FirstName, person.LastName, person.Phone, person.Address,
		nullableTime(person.DateOfBirth), education, work, person.CreatedAt, person.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create person",
			slog.String("person_id", person.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("person created", slog.String("person_id", person.ID))
	return nil
}

// GetByID implements store.PersonStore.GetByID
func (s *PostgresPersonStore) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	return s.getOne(ctx, "id", id)
}

// GetByUsername implements store.PersonStore.GetByUsername
func (s *PostgresPersonStore) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	return s.getOne(ctx, "username", username)
}

func (s *PostgresPersonStore) getOne(ctx context.Context, column, value string) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(personColumns).From(personsCollection).Where(sq.Eq{column: value}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person query: %w", err)
	}

	person, err := scanPerson(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("person not found", slog.String("by", column))
			return nil, store.ErrPersonNotFound
		}
		log.Error("failed to get person",
			slog.String("by", column),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return person, nil
}

// UpdateByUsername implements store.PersonStore.UpdateByUsername
func (s *PostgresPersonStore) UpdateByUsername(
	ctx context.Context,
	username string,
	patch domain.PersonPatch,
) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Update(personsCollection).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + personColumns)
	if patch.FirstName != nil {
		b = b.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		b = b.Set("last_name", *patch.LastName)
	}
	if patch.Phone != nil {
		b = b.Set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		b = b.Set("address", *patch.Address)
	}
	if patch.DateOfBirth != nil {
		b = b.Set("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Education != nil {
		education, err := jsonParam(patch.Education)
		if err != nil {
			return nil, err
		}
		b = b.Set("education", education)
	}
	if patch.WorkExperience != nil {
		work, err := jsonParam(patch.WorkExperience)
		if err != nil {
			return nil, err
		}
		b = b.Set("work_experience", work)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person update: %w", err)
	}

	var updated *domain.Person
	err = store.InTx(ctx, s.db, func(q store.DBTX) error {
		p, err := scanPerson(q.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrPersonNotFound
			}
			return MapError(err)
		}
		if err := validateDocument(personsCollection, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		log.Warn("person update failed",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("person updated", slog.String("person_id", updated.ID))
	return updated, nil
}

// DeleteByUsername implements store.PersonStore.DeleteByUsername
func (s *PostgresPersonStore) DeleteByUsername(ctx context.Context, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE username = $1`, username)
	if err != nil {
		log.Error("failed to delete person",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrPersonNotFound); err != nil {
		log.Debug("person to delete not found", slog.String("username", username))
		return err
	}

	log.Info("person deleted", slog.String("username", username))
	return nil
}
