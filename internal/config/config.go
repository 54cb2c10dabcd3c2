// Package config reads the dashboard service configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the dashboard service settings.
type Config struct {
	Port                string        `env:"PORT" envDefault:"8090"`
	BackendURL          string        `env:"BACKEND_URL" envDefault:"http://localhost:3000/api"`
	PrinterPollInterval time.Duration `env:"PRINTER_POLL_INTERVAL" envDefault:"15s"`
	AllowedOrigins      []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
