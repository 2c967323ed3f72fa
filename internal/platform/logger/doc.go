// Package logger configures the process-wide slog JSON logger from the
// server configuration and carries request-scoped loggers, such as those
// tagged with a trace ID, through request contexts.
package logger
