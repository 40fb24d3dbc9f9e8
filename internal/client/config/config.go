package config

import "time"

// Config holds runtime settings for the watchlist CLI.
//
// Fields:
//   - ServerAddress: base URL of the server, e.g. "http://127.0.0.1:5000".
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerAddress  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddress = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
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
