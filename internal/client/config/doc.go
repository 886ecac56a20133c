// Package config loads runtime configuration for the TravelMate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local database file
//	-t int      API request timeout (seconds)
//	-i int      session watch interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "database_file": "travelmate.db",
//	  "request_timeout": "10s",
//	  "watch_interval": "2s"
//	}
//
// Primary API
//
//   - type Config                     — holds the API endpoint, database path, and intervals
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
