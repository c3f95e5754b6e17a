package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("API_BASE_URL", "https://api.foyer.test")
	t.Setenv("API_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_PATH", "/tmp/foyer.db")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://api.foyer.test", cfg.API.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/tmp/foyer.db", cfg.Storage.DB.Path)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_UnsetVariablesLeaveZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.Path)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
