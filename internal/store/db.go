package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx, allowing our code
// to work with either a database connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn inside a transaction. When db is already a transaction, fn
// joins it and the caller stays responsible for commit or rollback.
func InTx(ctx context.Context, db DBTX, fn func(q DBTX) error) error {
	conn, ok := db.(*sql.DB)
	if !ok {
		return fn(db)
	}
	return RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
		return fn(tx)
	})
}
