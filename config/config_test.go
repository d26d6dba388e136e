package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, 0, cfg.HTTPMaxRetries)
	assert.True(t, cfg.BreakerEnabled)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Empty(t, cfg.TokenPath)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.jerseystore.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_MAX_RETRIES", "2")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("CATALOG_PAGE_SIZE", "20")
	t.Setenv("SESSION_TOKEN_PATH", "/tmp/session-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.jerseystore.example", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.HTTPMaxRetries)
	assert.False(t, cfg.BreakerEnabled)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "/tmp/session-token", cfg.TokenPath)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "not-a-url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page size")
}

func TestLoad_NegativeRetries(t *testing.T) {
	t.Setenv("HTTP_MAX_RETRIES", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries")
}
