package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// newHTTPServer builds the server with the timeouts from configuration.
func (app *application) newHTTPServer(handler http.Handler) *http.Server {
	cfg := app.config.Server
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
	}
}

// startHTTPServer serves handler until SIGINT, SIGTERM, ctx cancellation or
// a listener failure, then shuts down gracefully and runs cleanup.
func (app *application) startHTTPServer(ctx context.Context, handler http.Handler) error {
	server := app.newHTTPServer(handler)

	serverCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	var serveErr error
	select {
	case err := <-listenErr:
		if err != nil {
			app.logger.Error("Server failed", "error", err)
			serveErr = fmt.Errorf("server failed: %w", err)
		}
	case <-serverCtx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		serveErr = errors.Join(serveErr, fmt.Errorf("server shutdown failed: %w", err))
	}

	app.cleanup()

	if serveErr == nil {
		app.logger.Info("Server shutdown completed")
	}
	return serveErr
}
