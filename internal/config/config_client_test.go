package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultAPIBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.NotEmpty(t, cfg.Storage.DB.Path)
	assert.Contains(t, cfg.Storage.DB.Path, defaultDBFileName)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "https://api.foyer.test",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{Path: "/tmp/foyer.db"}},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}

	cfg.applyDefaults()

	assert.Equal(t, "https://api.foyer.test", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/foyer.db", cfg.Storage.DB.Path)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{
				BaseURL:        DefaultAPIBaseURL,
				RequestTimeout: DefaultRequestTimeout,
			},
			Storage: ClientStorage{DB: ClientDB{Path: "/tmp/foyer.db"}},
			Workers: ClientWorkers{RefreshInterval: DefaultRefreshInterval},
		}
	}

	tests := []struct {
		name     string
		mutate   func(cfg *ClientConfig)
		expected error
	}{
		{
			name:     "valid config passes",
			mutate:   func(cfg *ClientConfig) {},
			expected: nil,
		},
		{
			name:     "empty db path",
			mutate:   func(cfg *ClientConfig) { cfg.Storage.DB.Path = "" },
			expected: ErrInvalidStorageConfigs,
		},
		{
			name:     "empty base url",
			mutate:   func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "" },
			expected: ErrInvalidAdapterConfigs,
		},
		{
			name:     "negative request timeout",
			mutate:   func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second },
			expected: ErrInvalidAdapterConfigs,
		},
		{
			name:     "negative refresh interval",
			mutate:   func(cfg *ClientConfig) { cfg.Workers.RefreshInterval = -time.Minute },
			expected: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
