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

const listingColumns = "id, title, organization_name, date_posted, work_type, employment_type, " +
	"experience_level, city, country, description, salary_range, status, created_at, updated_at"

// PostgresListingStore implements the store.ListingStore interface
// using a PostgreSQL database as the storage backend.
type PostgresListingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresListingStore creates a new PostgreSQL implementation of the ListingStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresListingStore(db store.DBTX, logger *slog.Logger) *PostgresListingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresListingStore{
		db:     db,
		logger: logger.With(slog.String("component", "listing_store")),
	}
}

// Ensure PostgresListingStore implements store.ListingStore interface
var _ store.ListingStore = (*PostgresListingStore)(nil)

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		l                                          domain.Listing
		workType, employmentType, experience, stat string
		salary                                     []byte
	)
	err := row.Scan(&l.ID, &l.Title, &l.OrganizationName, &l.DatePosted, &workType, &employmentType,
		&experience, &l.City, &l.Country, &l.Description, &salary, &stat, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.WorkType = domain.WorkType(workType)
	l.EmploymentType = domain.EmploymentType(employmentType)
	l.ExperienceLevel = domain.ExperienceLevel(experience)
	l.Status = domain.ListingStatus(stat)

	if len(salary) > 0 && string(salary) != "null" {
		l.SalaryRange = &domain.SalaryRange{}
		if err := decodeJSON(salary, l.SalaryRange); err != nil {
			return nil, err
		}
	}
	return &l, nil
}

func salaryParam(r *domain.SalaryRange) (any, error) {
	if r == nil {
		return nil, nil
	}
	return jsonParam(r)
}

// Create implements store.ListingStore.Create
func (s *PostgresListingStore) Create(ctx context.Context, listing *domain.Listing) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	listing.CreatedAt, listing.UpdatedAt = now, now

	if err := validateDocument(listingsCollection, listing); err != nil {
		log.Warn("listing rejected by schema",
			slog.String("listing_id", listing.ID),
			slog.String("error", err.Error()))
		return err
	}

	salary, err := salaryParam(listing.SalaryRange)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert(listingsCollection).
		Columns("id", "title", "organization_name", "date_posted", "work_type", "employment_type",
			"experience_level", "city", "country", "description", "salary_range", "status",
			"created_at", "updated_at").
		Values(listing.ID, listing.Title, listing.OrganizationName, listing.DatePosted,
			string(listing.WorkType), string(listing.EmploymentType), string(listing.ExperienceLevel),
			listing.City, listing.Country, listing.Description, salary, string(listing.Status),
			listing.CreatedAt, listing.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build listing insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create listing",
			slog.String("listing_id", listing.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("listing created", slog.String("listing_id", listing.ID))
	return nil
}

// GetByID implements store.ListingStore.GetByID
func (s *PostgresListingStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listing, err := scanListing(s.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("listing not found", slog.String("listing_id", id))
			return nil, store.ErrListingNotFound
		}
		log.Error("failed to get listing",
			slog.String("listing_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return listing, nil
}

// findQuery builds the SELECT for filter. Only the constrained columns
// appear in the WHERE clause.
func findQuery(filter domain.ListingFilter) sq.SelectBuilder {
	where := sq.Eq{}
	if filter.Status != nil {
		where["status"] = string(*filter.Status)
	}
	if filter.WorkType != nil {
		where["work_type"] = string(*filter.WorkType)
	}
	if filter.EmploymentType != nil {
		where["employment_type"] = string(*filter.EmploymentType)
	}
	if filter.ExperienceLevel != nil {
		where["experience_level"] = string(*filter.ExperienceLevel)
	}

	b := psql.Select(listingColumns).From(listingsCollection)
	if len(where) > 0 {
		b = b.Where(where)
	}
	return b.OrderBy("date_posted DESC", "id DESC")
}

// Find implements store.ListingStore.Find
func (s *PostgresListingStore) Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := findQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listing query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query listings", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			log.Error("failed to scan listing", slog.String("error", err.Error()))
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate listings", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("listings retrieved", slog.Int("count", len(listings)))
	return listings, nil
}

// Update implements store.ListingStore.Update
func (s *PostgresListingStore) Update(
	ctx context.Context,
	id string,
	patch domain.ListingPatch,
) (*domain.Listing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Update(listingsCollection).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + listingColumns)
	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.OrganizationName != nil {
		b = b.Set("organization_name", *patch.OrganizationName)
	}
	if patch.DatePosted != nil {
		b = b.Set("date_posted", *patch.DatePosted)
	}
	if patch.WorkType != nil {
		b = b.Set("work_type", string(*patch.WorkType))
	}
	if patch.EmploymentType != nil {
		b = b.Set("employment_type", string(*patch.EmploymentType))
	}
	if patch.ExperienceLevel != nil {
		b = b.Set("experience_level", string(*patch.ExperienceLevel))
	}
	if patch.City != nil {
		b = b.Set("city", *patch.City)
	}
	if patch.Country != nil {
		b = b.Set("country", *patch.Country)
	}
	if patch.Description != nil {
		b = b.Set("description", *patch.Description)
	}
	if patch.SalaryRange != nil {
		salary, err := jsonParam(patch.SalaryRange)
		if err != nil {
			return nil, err
		}
		b = b.Set("salary_range", salary)
	}
	if patch.Status != nil {
		b = b.Set("status", string(*patch.Status))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listing update: %w", err)
	}

	var updated *domain.Listing
	err = store.InTx(ctx, s.db, func(q store.DBTX) error {
		l, err := scanListing(q.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrListingNotFound
			}
			return MapError(err)
		}
		if err := validateDocument(listingsCollection, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		log.Warn("listing update failed",
			slog.String("listing_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("listing updated", slog.String("listing_id", id))
	return updated, nil
}

// Delete implements store.ListingStore.Delete
func (s *PostgresListingStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete listing",
			slog.String("listing_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrListingNotFound); err != nil {
		log.Debug("listing to delete not found", slog.String("listing_id", id))
		return err
	}

	log.Info("listing deleted", slog.String("listing_id", id))
	return nil
}
