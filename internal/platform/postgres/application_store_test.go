package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationColumnNames = []string{"id", "person_id", "listing_id", "created_at", "updated_at"}

func TestPostgresApplicationStore_Create(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{name: "already applied", dbErr: &pgconn.PgError{Code: uniqueViolationCode}, wantErr: store.ErrDuplicate},
		{name: "unknown listing", dbErr: &pgconn.PgError{Code: foreignKeyViolationCode}, wantErr: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			s := NewPostgresApplicationStore(db, nil)
			a, err := domain.NewApplication(domain.NewID(), domain.NewID())
			require.NoError(t, err)

			exp := mock.ExpectExec("INSERT INTO applications").
				WithArgs(a.ID, a.PersonID, a.ListingID, sqlmock.AnyArg(), sqlmock.AnyArg())
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = s.Create(context.Background(), a)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresApplicationStore_Find(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	s := NewPostgresApplicationStore(db, nil)
	personID, listingID := domain.NewID(), domain.NewID()

	mock.ExpectQuery(regexp.QuoteMeta("FROM applications WHERE person_id = $1")).
		WithArgs(personID).
		WillReturnRows(sqlmock.NewRows(applicationColumnNames).
			AddRow(domain.NewID(), personID, listingID, fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("FROM applications WHERE listing_id = $1")).
		WithArgs(listingID).
		WillReturnRows(sqlmock.NewRows(applicationColumnNames))

	byPerson, err := s.FindByPersonID(ctx, personID)
	require.NoError(t, err)
	require.Len(t, byPerson, 1)
	assert.Equal(t, listingID, byPerson[0].ListingID)

	byListing, err := s.FindByListingID(ctx, listingID)
	require.NoError(t, err)
	assert.NotNil(t, byListing)
	assert.Empty(t, byListing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresApplicationStore_DeleteByPair(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	s := NewPostgresApplicationStore(db, nil)
	id, personID, listingID := domain.NewID(), domain.NewID(), domain.NewID()

	deleteSQL := regexp.QuoteMeta("DELETE FROM applications WHERE person_id = $1 AND listing_id = $2 RETURNING")
	mock.ExpectQuery(deleteSQL).
		WithArgs(personID, listingID).
		WillReturnRows(sqlmock.NewRows(applicationColumnNames).AddRow(id, personID, listingID, fixedTime, fixedTime))
	mock.ExpectQuery(deleteSQL).
		WithArgs(personID, listingID).
		WillReturnRows(sqlmock.NewRows(applicationColumnNames))

	removed, err := s.DeleteByPair(ctx, personID, listingID)
	require.NoError(t, err)
	assert.Equal(t, id, removed.ID)

	_, err = s.DeleteByPair(ctx, personID, listingID)
	assert.ErrorIs(t, err, store.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresApplicationStore_GetByPairAndDelete(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	s := NewPostgresApplicationStore(db, nil)
	id := domain.NewID()

	mock.ExpectQuery("FROM applications WHERE person_id").WillReturnRows(sqlmock.NewRows(applicationColumnNames))
	mock.ExpectExec("DELETE FROM applications WHERE id").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.GetByPair(ctx, domain.NewID(), domain.NewID())
	assert.ErrorIs(t, err, store.ErrApplicationNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), store.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
