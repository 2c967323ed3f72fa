package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/redact"
)

// Messages shared by several endpoints.
const (
	MessageBadRequest   = "Bad request"
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageServerError  = "An unexpected error occurred"
)

// Envelope is the body of every non-empty success response.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// FieldError is one failed validation rule.
type FieldError struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response. Errors is set only
// for validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// RespondWithData writes the {message, data} success envelope.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, Envelope{Message: message, Data: data})
}

// RespondNoContent writes a 204 without a body.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondWithError writes a {message} error response.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Message: message})
}

// RespondWithValidationErrors writes the 400 "Bad request" response
// listing every failed rule.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, errs []FieldError) {
	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("request failed validation",
		slog.Int("error_count", len(errs)),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Message: MessageBadRequest,
		Errors:  errs,
	})
}

// RespondWithErrorAndLog writes a {message} error response and logs the
// redacted detail of err. Server errors are logged at ERROR level, client
// errors at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context(), slog.Default()).
		LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Message: userMessage})
}
