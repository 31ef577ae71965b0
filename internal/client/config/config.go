package config

import "time"

// Config holds runtime settings for the bookstall client.
//
// Fields:
//   - APIBaseURL: root of the bookstore REST API, including the /api prefix.
//   - SessionDBPath: location of the local SQLite session database.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.SessionDBPath = "bookstall.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
