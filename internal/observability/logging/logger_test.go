package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"datapulse/internal/handler/http/requestid"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run("level_"+tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, levelFromEnv())
		})
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := requestid.NewContext(context.Background(), "req-123")
	WithRequestID(ctx, logger).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}

func TestWithRequestIDNoID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithRequestID(context.Background(), logger).Info("hello")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")

	// Missing logger falls back to the default.
	assert.NotNil(t, FromContext(context.Background()))
}
