// Package logging provides structured logging helpers built on the
// standard library's log/slog.
package logging

import (
	"context"
	"log/slog"
	"os"

	"datapulse/internal/handler/http/requestid"
)

// levelFromEnv maps the LOG_LEVEL environment variable to a slog
// level. Unrecognized values default to info.
func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a JSON-output structured logger. The level is
// controlled by LOG_LEVEL (debug, info, warn, error; default info).
func NewLogger() *slog.Logger {
	level := levelFromEnv()
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		// Source locations only when debugging.
		AddSource: level == slog.LevelDebug,
	})
	return slog.New(handler)
}

// NewTextLogger creates a human-readable text logger for local
// development.
func NewTextLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler)
}

// WithRequestID returns a logger carrying the request ID from the
// context, when one is present.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

type loggerContextKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the context's logger, falling back to the
// process default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
