package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/redact"
	"github.com/sethvargo/go-retry"
)

const (
	pingTimeout      = 5 * time.Second
	pingRetryBackoff = 500 * time.Millisecond
)

// setupAppDatabase opens the connection pool, applies the pool settings and
// pings the database, retrying up to the configured number of attempts.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute)

	if err := pingWithRetry(ctx, db, cfg.Database.ConnectAttempts, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established",
		"url", redact.String(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns)
	return db, nil
}

// pingWithRetry pings db with exponential backoff. attempts below one mean a
// single attempt.
func pingWithRetry(ctx context.Context, db *sql.DB, attempts int, logger *slog.Logger) error {
	retries := uint64(0)
	if attempts > 1 {
		retries = uint64(attempts - 1)
	}
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(pingRetryBackoff))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("Database ping failed", "attempt", attempt, "error", redact.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
	}
	return nil
}
