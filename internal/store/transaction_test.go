package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransaction(t *testing.T) {
	fnErr := errors.New("function failed")
	dbErr := errors.New("database failed")

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		fn          TxFn
		wantErrIs   error
		wantErrText string
	}{
		{
			name: "commits on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sql.Tx) error { return nil },
		},
		{
			name: "rolls back on error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs: fnErr,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(dbErr)
			},
			fn:          func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrIs:   dbErr,
			wantErrText: "failed to begin transaction",
		},
		{
			name: "commit failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(dbErr)
			},
			fn:          func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrIs:   dbErr,
			wantErrText: "failed to commit transaction",
		},
		{
			name: "rollback failure keeps the original error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(dbErr)
			},
			fn:          func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs:   fnErr,
			wantErrText: "error rolling back transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			err := RunInTransaction(context.Background(), db, tt.fn)

			if tt.wantErrIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantErrText != "" {
				assert.Contains(t, err.Error(), tt.wantErrText)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_Panic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx(t *testing.T) {
	t.Run("opens a transaction on a pool", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := InTx(context.Background(), db, func(q DBTX) error {
			_, ok := q.(*sql.Tx)
			assert.True(t, ok)
			_, err := q.ExecContext(context.Background(), "DELETE FROM users")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins an existing transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		tx, err := db.Begin()
		require.NoError(t, err)

		var got DBTX
		err = InTx(context.Background(), tx, func(q DBTX) error {
			got = q
			return nil
		})
		require.NoError(t, err)
		assert.Same(t, tx, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
