package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the storefront client.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Remote storefront API.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`

	// HTTP transport. Retries are off by default: a failed call is surfaced
	// to the user and aborted, not replayed.
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
	HTTPMaxRetries     int `env:"HTTP_MAX_RETRIES" envDefault:"0"`

	// Circuit breaker around the storefront API.
	BreakerEnabled bool `env:"BREAKER_ENABLED" envDefault:"true"`

	// Catalog paging.
	PageSize int `env:"CATALOG_PAGE_SIZE" envDefault:"10"`

	// Session token storage. Empty path selects the in-memory store.
	TokenPath string `env:"SESSION_TOKEN_PATH" envDefault:""`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("invalid API base URL: %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("invalid HTTP timeout: %d", c.HTTPTimeoutSeconds)
	}
	if c.HTTPMaxRetries < 0 {
		return fmt.Errorf("invalid HTTP max retries: %d", c.HTTPMaxRetries)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("invalid catalog page size: %d", c.PageSize)
	}
	return nil
}
