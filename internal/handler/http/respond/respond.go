// Package respond provides utilities for sending HTTP responses in JSON
// format, including error sanitization so internal details never reach
// clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, so the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and
// error message, without sanitization. Use SafeError for errors that
// may carry internal detail.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeSubstrings marks error messages that are fine to show to users,
// such as validation failures. Anything else is treated as internal.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"must not be",
	"at most",
}

// SafeError sanitizes error messages before returning them to users.
// Validation-style errors pass through unchanged; everything else is
// logged with masked credentials and replaced by a generic message.
// Responses with 5xx codes are always treated as internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
