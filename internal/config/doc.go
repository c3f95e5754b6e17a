// Package config provides configuration loading, merging, and validation
// facilities for the Foyer client.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for any field set in several places):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges all sources,
// applies defaults for anything left unset, and validates the result.
package config
