package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", GetEnvString("TEST_STR", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STR_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-3", -3},
		{"invalid falls back", "abc", 7},
		{"empty falls back", "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("TEST_FLOAT", 1.0))

	t.Setenv("TEST_FLOAT", "nope")
	assert.Equal(t, 1.0, GetEnvFloat("TEST_FLOAT", 1.0))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"YES", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"OFF", false},
		{"maybe", true}, // falls back to default
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR", time.Minute))
}
