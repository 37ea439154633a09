// Package config provides helpers for reading configuration from
// environment variables with typed defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the environment variable value, or defaultValue
// when the variable is unset or empty.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the environment variable parsed as an integer.
// Unparseable values fall back to defaultValue with a warning log.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvFloat returns the environment variable parsed as a float64.
// Unparseable values fall back to defaultValue with a warning log.
func GetEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		slog.Warn("invalid float value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Float64("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvBool returns the environment variable parsed as a boolean.
// Accepted truthy values are "true", "1", "yes", "on" (case
// insensitive); falsy values are their opposites. Anything else falls
// back to defaultValue with a warning log.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch strings.ToLower(valueStr) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}

	slog.Warn("invalid boolean value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", valueStr),
		slog.Bool("default", defaultValue))
	return defaultValue
}

// GetEnvDuration returns the environment variable parsed with
// time.ParseDuration (e.g. "30s", "5m"). Unparseable values fall back
// to defaultValue with a warning log.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return value
}
