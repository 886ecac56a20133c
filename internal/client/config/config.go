package config

import "time"

// Config holds runtime settings for the TravelMate CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - DatabaseFile: path of the local SQLite file for settings and caches.
//   - RequestTimeout: per-request timeout for API calls.
//   - WatchInterval: how often the session watcher polls the local store for
//     changes made by other running clients.
//
// Units: RequestTimeout and WatchInterval are time.Duration values.
type Config struct {
	APIBaseURL     string
	DatabaseFile   string
	RequestTimeout time.Duration
	WatchInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabaseFile = "travelmate.db"
	c.RequestTimeout = 10 * time.Second
	c.WatchInterval = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
