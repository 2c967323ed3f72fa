package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf forwards goose failures at error level. It does not exit; the
// error is returned by the goose call instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

var migrationCommands = map[string]func(ctx context.Context, db *sql.DB, dir string) error{
	"up": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.UpContext(ctx, db, dir)
	},
	"down": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.DownContext(ctx, db, dir)
	},
	"reset": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.ResetContext(ctx, db, dir)
	},
	"status": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.StatusContext(ctx, db, dir)
	},
	"version": func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.VersionContext(ctx, db, dir)
	},
}

func isMigrationCommand(cmd string) bool {
	_, ok := migrationCommands[cmd]
	return ok
}

// runMigrations executes a goose command against the migrations embedded in
// the binary.
func runMigrations(ctx context.Context, db *sql.DB, cmd string, verbose bool) error {
	exec, ok := migrationCommands[cmd]
	if !ok {
		return fmt.Errorf("unknown migration command %q", cmd)
	}

	goose.SetBaseFS(postgres.Migrations)
	goose.SetLogger(&slogGooseLogger{logger: slog.Default().With("component", "migrations")})
	goose.SetVerbose(verbose)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	slog.Info("Executing migrations", "command", cmd)
	if err := exec(ctx, db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("migration command %q failed: %w", cmd, err)
	}
	return nil
}
