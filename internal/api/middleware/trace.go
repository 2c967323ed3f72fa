package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and the
// X-Trace-ID response header, and stores a request logger carrying it.
// The ID is the OpenTelemetry trace ID when a span is active.
// It should run before every other API middleware.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)
		w.Header().Set(shared.TraceIDHeader, traceID)

		log := logger.FromContextOrDefault(ctx, slog.Default()).With(slog.String("trace_id", traceID))
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
	})
}
