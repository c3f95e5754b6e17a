package config

import "time"

// StructuredConfig is the top-level configuration container for the Foyer
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// API holds network settings for reaching the Foyer backend.
	API API `envPrefix:"API_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown on the home screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds settings for the outbound HTTP transport to the Foyer backend.
type API struct {
	// BaseURL is the root URL of the Foyer API
	// (e.g. "https://api.foyer.app" or "http://localhost:8000").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local token database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the local bbolt database file.
type DB struct {
	// Path is the filesystem path of the bbolt file holding the stored
	// credential pair (e.g. "~/.config/foyer/foyer.db").
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the identity refresh job re-fetches
	// the authenticated user from the API (e.g. "5m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources in the following priority order (an earlier source wins
// for any field set in several places):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
