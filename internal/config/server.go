package config

import (
	"fmt"
	"time"

	"textrank/internal/domain/entity"
	pkgconfig "textrank/pkg/config"
)

// ServerConfig holds HTTP server settings for cmd/api.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080".
	Addr string

	// ReadTimeout bounds reading the full request including the body.
	// Default: 15s.
	ReadTimeout time.Duration

	// WriteTimeout bounds writes of the response. Default: 30s.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	// Default: 10s.
	ShutdownTimeout time.Duration

	// MaxBodySize is the maximum accepted request body in bytes.
	// Default: 1 MiB.
	MaxBodySize int64

	// EnableTracing installs an OpenTelemetry tracer provider at startup.
	// Default: false.
	EnableTracing bool
}

// LoadServerConfig loads server configuration from environment variables.
//
// Environment variables:
//   - API_ADDR (default ":8080")
//   - API_READ_TIMEOUT, API_WRITE_TIMEOUT, API_SHUTDOWN_TIMEOUT
//   - API_MAX_BODY_SIZE (bytes)
//   - TRACING_ENABLED
func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		Addr:            pkgconfig.GetEnvString("API_ADDR", ":8080"),
		ReadTimeout:     pkgconfig.GetEnvDuration("API_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    pkgconfig.GetEnvDuration("API_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: pkgconfig.GetEnvDuration("API_SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodySize:     int64(pkgconfig.GetEnvInt("API_MAX_BODY_SIZE", 1<<20)),
		EnableTracing:   pkgconfig.GetEnvBool("TRACING_ENABLED", false),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("server configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the server configuration is usable.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return &entity.ValidationError{Field: "addr", Message: "must not be empty"}
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return &entity.ValidationError{Field: "timeouts", Message: "must be positive"}
	}
	if c.MaxBodySize < 1024 {
		return &entity.ValidationError{Field: "max_body_size", Message: fmt.Sprintf("must be at least 1024 bytes, got %d", c.MaxBodySize)}
	}
	return nil
}
