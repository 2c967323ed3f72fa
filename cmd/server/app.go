package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/jobboard-api/internal/api"
	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const tracingShutdownTimeout = 5 * time.Second

// application holds the shared dependencies of the server and ensures
// proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tracerProvider *sdktrace.TracerProvider

	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	validator  *api.Validator

	userService        service.UserService
	personService      service.PersonService
	listingService     service.ListingService
	applicationService service.ApplicationService
}

// newApplication installs tracing and creates the stores and services on top
// of an open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		validator: api.NewValidator(),

		tracerProvider: newTracerProvider(),
	}
	setupTracing(app.tracerProvider)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	bcryptHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.hasher = bcryptHasher

	userStore := postgres.NewPostgresUserStore(db, logger)
	personStore := postgres.NewPostgresPersonStore(db, logger)
	listingStore := postgres.NewPostgresListingStore(db, logger)
	applicationStore := postgres.NewPostgresApplicationStore(db, logger)

	app.userService, err = service.NewUserService(userStore, personStore, db, app.jwtService, bcryptHasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	app.personService, err = service.NewPersonService(personStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}
	app.listingService, err = service.NewListingService(listingStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %w", err)
	}
	app.applicationService, err = service.NewApplicationService(applicationStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the resources held by the application.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx, app.tracerProvider); err != nil {
		app.logger.Error("Error shutting down tracer provider", "error", err)
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
