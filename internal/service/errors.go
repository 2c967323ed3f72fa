package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/redact"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// Kind classifies a service failure. Each kind maps to one HTTP status.
type Kind uint8

// Failure kinds.
const (
	KindServer Kind = iota
	KindNotFound
	KindUniqueConstraint
	KindConstraint
	KindUnauthorized
)

// String returns the name used for the kind in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUniqueConstraint:
		return "unique_constraint"
	case KindConstraint:
		return "constraint"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "server"
	}
}

// status returns the HTTP status reported for the kind.
func (k Kind) status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUniqueConstraint:
		return http.StatusConflict
	case KindConstraint:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Client-facing messages shared by every resource.
const (
	ServerErrorMessage    = "An unexpected error occurred"
	AuthFailedMessage     = "Authentication failed"
	schemaFailurePrefix   = "Validation failed: "
	defaultInvalidMessage = "Request violates a data constraint"
)

// Error is the only error type returned by services. Status and Message are
// safe to send to clients; Op and Err are for logs.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return e.Op + ": " + e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Status: kind.status(), Message: message, Op: op, Err: err}
}

// NotFound reports an absent resource.
func NotFound(op, message string, err error) *Error {
	return newError(KindNotFound, op, message, err)
}

// UniqueConstraint reports a write that would duplicate a unique value.
func UniqueConstraint(op, message string, err error) *Error {
	return newError(KindUniqueConstraint, op, message, err)
}

// Constraint reports a write rejected by schema or reference checks.
func Constraint(op, message string, err error) *Error {
	return newError(KindConstraint, op, message, err)
}

// Unauthorized reports failed authentication.
func Unauthorized(op string, err error) *Error {
	return newError(KindUnauthorized, op, AuthFailedMessage, err)
}

// ServerError reports any failure the client cannot act on.
func ServerError(op string, err error) *Error {
	return newError(KindServer, op, ServerErrorMessage, err)
}

// IsKind reports whether err is a service Error of kind k.
func IsKind(err error, k Kind) bool {
	var svcErr *Error
	return errors.As(err, &svcErr) && svcErr.Kind == k
}

// resource holds the client messages of one collection.
type resource struct {
	notFound       string
	pluralNotFound string
	duplicate      string
	invalid        string
}

var (
	userResource = resource{
		notFound:  "User was not found",
		duplicate: "A user with this username or email already exists",
		invalid:   defaultInvalidMessage,
	}
	personResource = resource{
		notFound:  "Person was not found",
		duplicate: "A profile already exists for this username",
		invalid:   defaultInvalidMessage,
	}
	listingResource = resource{
		notFound:       "Listing was not found",
		pluralNotFound: "Listings were not found",
		duplicate:      "Listing already exists",
		invalid:        defaultInvalidMessage,
	}
	applicationResource = resource{
		notFound:       "Application was not found",
		pluralNotFound: "Applications were not found",
		duplicate:      "An application for this person and listing already exists",
		invalid:        "Referenced person or listing does not exist",
	}
)

// schemaMessage turns a schema failure into a client message.
func schemaMessage(err error) string {
	var schemaErr *store.SchemaError
	if errors.As(err, &schemaErr) && len(schemaErr.Messages) > 0 {
		return schemaFailurePrefix + strings.Join(schemaErr.Messages, "; ")
	}
	return schemaFailurePrefix + "document does not match its schema"
}

// classify translates a store failure into an *Error and logs it under op.
// Errors that are already classified pass through unchanged.
func classify(ctx context.Context, base *slog.Logger, op string, res resource, err error) error {
	log := logger.FromContextOrDefault(ctx, base).With(slog.String("operation", op))

	var svcErr *Error
	if errors.As(err, &svcErr) {
		log.Debug("propagating classified error", slog.String("error_kind", svcErr.Kind.String()))
		return svcErr
	}

	var out *Error
	switch {
	case store.IsNotFoundError(err):
		out = NotFound(op, res.notFound, err)
	case errors.Is(err, store.ErrDuplicate):
		out = UniqueConstraint(op, res.duplicate, err)
	case errors.Is(err, store.ErrSchemaValidation):
		out = Constraint(op, schemaMessage(err), err)
	case errors.Is(err, store.ErrInvalidEntity):
		out = Constraint(op, res.invalid, err)
	default:
		log.Error("operation failed",
			slog.String("error_kind", KindServer.String()),
			slog.String("error", redact.Error(err)))
		return ServerError(op, err)
	}

	log.Info("operation rejected",
		slog.String("error_kind", out.Kind.String()),
		slog.String("error", redact.Error(err)))
	return out
}

// emptyResult reports a plural read that matched nothing.
func emptyResult(ctx context.Context, base *slog.Logger, op string, res resource) error {
	logger.FromContextOrDefault(ctx, base).Info("operation rejected",
		slog.String("operation", op),
		slog.String("error_kind", KindNotFound.String()))
	return NotFound(op, res.pluralNotFound, nil)
}
