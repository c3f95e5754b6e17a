package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] when a field is left unset by every
// configuration source.
const (
	DefaultAPIBaseURL      = "http://localhost:8000"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRefreshInterval = 5 * time.Minute

	defaultDBFileName = "foyer.db"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown in the UI.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root URL of the Foyer API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// Path is the bbolt file path holding the stored credential pair.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the identity refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults for anything left unset, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: cfg.Storage.DB.Path,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultAPIBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = defaultDBPath()
	}
}

// validate checks that the final client configuration satisfies the client
// runtime invariants. Defaults have already been applied, so anything still
// unset or negative here is a caller mistake.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// defaultDBPath places the token database under the user's config directory,
// falling back to the working directory when the former cannot be resolved.
func defaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return defaultDBFileName
	}
	return filepath.Join(configDir, "foyer", defaultDBFileName)
}
