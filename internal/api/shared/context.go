package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"go.opentelemetry.io/otel/trace"
)

// ContextKey is the type of the request context keys set by the API layer.
type ContextKey string

const (
	// UserContextKey holds the authenticated *domain.User.
	UserContextKey ContextKey = "user"

	// TraceIDKey holds the trace ID of the request.
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader is the response header carrying the trace ID.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a trace ID to the context. It reuses the trace ID of the
// span active in ctx and falls back to a fresh UUID when there is none.
func SetTraceID(ctx context.Context) context.Context {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return context.WithValue(ctx, TraceIDKey, sc.TraceID().String())
	}
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
