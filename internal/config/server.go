// Package config loads the service configuration. Values come from
// environment variables first, with an optional YAML file providing
// defaults for anything the environment leaves unset.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "datapulse/pkg/config"
)

// ServerConfig holds the runtime configuration for the API server.
type ServerConfig struct {
	Addr            string
	DatabaseURL     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	RateLimitRPS    float64
	RateLimitBurst  int
}

// defaultServerConfig returns the built-in defaults.
func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20, // 1 MiB
		RateLimitRPS:    50,
		RateLimitBurst:  100,
	}
}

// fileConfig mirrors ServerConfig for YAML decoding. Durations are
// strings ("15s", "1m") since yaml.v3 has no native duration support.
type fileConfig struct {
	Addr            string  `yaml:"addr"`
	DatabaseURL     string  `yaml:"database_url"`
	ReadTimeout     string  `yaml:"read_timeout"`
	WriteTimeout    string  `yaml:"write_timeout"`
	IdleTimeout     string  `yaml:"idle_timeout"`
	ShutdownTimeout string  `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64   `yaml:"max_body_bytes"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// Load builds the configuration. When path is non-empty the YAML file
// is read first; environment variables then override its values.
func Load(path string) (*ServerConfig, error) {
	cfg := defaultServerConfig()

	if path != "" {
		// #nosec G304 -- path comes from the CLI flag, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if err := applyFileConfig(&cfg, fc); err != nil {
			return nil, err
		}
	}

	cfg.Addr = pkgconfig.GetEnvString("HTTP_ADDR", cfg.Addr)
	cfg.DatabaseURL = pkgconfig.GetEnvString("DATABASE_URL", cfg.DatabaseURL)
	cfg.ReadTimeout = pkgconfig.GetEnvDuration("HTTP_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = pkgconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = pkgconfig.GetEnvDuration("HTTP_IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.ShutdownTimeout = pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.MaxBodyBytes = int64(pkgconfig.GetEnvInt("HTTP_MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.RateLimitRPS = pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = pkgconfig.GetEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyFileConfig overlays the file's set fields onto cfg. Zero values
// mean "not set" and keep the default.
func applyFileConfig(cfg *ServerConfig, fc fileConfig) error {
	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.DatabaseURL != "" {
		cfg.DatabaseURL = fc.DatabaseURL
	}
	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"read_timeout", fc.ReadTimeout, &cfg.ReadTimeout},
		{"write_timeout", fc.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", fc.IdleTimeout, &cfg.IdleTimeout},
		{"shutdown_timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s in config file: %w", d.key, err)
		}
		*d.dst = parsed
	}
	if fc.MaxBodyBytes != 0 {
		cfg.MaxBodyBytes = fc.MaxBodyBytes
	}
	if fc.RateLimitRPS != 0 {
		cfg.RateLimitRPS = fc.RateLimitRPS
	}
	if fc.RateLimitBurst != 0 {
		cfg.RateLimitBurst = fc.RateLimitBurst
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}
