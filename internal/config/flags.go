package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL (e.g. "http://localhost:8000")
//	-request-timeout outbound request timeout (e.g. "15s", "1m")
//	-d local token database file path
//	-refresh-interval identity refresh interval (e.g. "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiBaseURL string
	var requestTimeout time.Duration
	var dbPath string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiBaseURL, "a", "", "Foyer API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&dbPath, "d", "", "Local token database path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Identity refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Path: dbPath,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
