package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/jobboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/jobboard-api/internal/api/middleware"
	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.hasher, app.validator)
	userHandler := api.NewUserHandler(app.userService, app.personService, app.hasher, app.validator)
	listingHandler := api.NewListingHandler(app.listingService, app.validator)
	applicationHandler := api.NewApplicationHandler(app.applicationService, app.validator)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userService)
	adminOnly := apiMiddleware.RequireRole(domain.RoleAdmin)

	r.Post("/login", authHandler.Login)
	r.Post("/register", authHandler.Register)
	r.Get("/health", app.health)

	r.Route("/p", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.CreateProfile)
			r.Put("/", userHandler.UpdateProfile)
			r.Delete("/", userHandler.Delete)
			r.Get("/username", userHandler.GetByUsername)
			r.Get("/email", userHandler.GetByEmail)
			r.Get("/profile", userHandler.GetProfile)
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", listingHandler.Get)
			r.With(adminOnly).Post("/", listingHandler.Create)
			r.With(adminOnly).Put("/", listingHandler.Update)
			r.With(adminOnly).Delete("/", listingHandler.Delete)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Post("/", applicationHandler.Create)
			r.Get("/", applicationHandler.Get)
			r.Delete("/", applicationHandler.Delete)
		})
	})

	opts := []otelhttp.Option{otelhttp.WithPropagators(textMapPropagator)}
	if app.tracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(app.tracerProvider))
	}
	return otelhttp.NewHandler(r, serviceName, opts...)
}

// health reports liveness together with database reachability.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := app.db.PingContext(ctx); err != nil {
			app.logger.Warn("Health check database ping failed", "error", err)
			status = "degraded"
		}
	}
	shared.RespondWithData(w, r, http.StatusOK, "OK", map[string]string{"status": status})
}
