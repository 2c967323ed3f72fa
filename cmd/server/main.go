// Package main implements the entry point for the job board API server,
// which serves user accounts, person profiles, job listings and
// applications over a JSON REST interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
)

// options holds the command line flags.
type options struct {
	migrateCmd string
	verbose    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run a migration command (up, down, reset, status, version) and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log every migration step")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.migrateCmd != "" && !isMigrationCommand(opts.migrateCmd) {
		return opts, fmt.Errorf("unknown migration command %q", opts.migrateCmd)
	}
	return opts, nil
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, and then either
// executes a migration command or serves HTTP until shutdown.
func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if opts.migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, opts.migrateCmd, opts.verbose)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", opts.verbose); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
