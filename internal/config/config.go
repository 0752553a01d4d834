// Package config loads server configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	// AppEnv is "development" or "production"
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SeedDemo loads the demo dataset into every register at startup
	SeedDemo bool `env:"SEED_DEMO" envDefault:"true"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// AuditCompressThreshold is the change payload size (bytes) above which audit entries are zstd-compressed
	AuditCompressThreshold int `env:"AUDIT_COMPRESS_THRESHOLD" envDefault:"10240"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the given .env files (default ".env") when they exist, then
// parses the environment. Variables already set win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AppEnv {
	case "development", "production", "test":
	default:
		return fmt.Errorf("config: APP_ENV must be development, production or test, got %q", c.AppEnv)
	}
	if c.Port == "" {
		return fmt.Errorf("config: APP_PORT is empty")
	}
	if c.AuditCompressThreshold < 0 {
		return fmt.Errorf("config: AUDIT_COMPRESS_THRESHOLD cannot be negative")
	}
	return nil
}
