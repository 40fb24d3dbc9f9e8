// Package config handles configuration for the watchlist server,
// including defaults, JSON overlay, environment variables and command-line
// flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrMissingSecretKey is returned by Validate when no signing secret was
// configured. The server refuses to start without one.
var ErrMissingSecretKey = errors.New("secret key is required (flag -s, env WATCHLIST_SECRET_KEY or secret_key in config file)")

// Config holds runtime settings for the watchlist server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: "postgres://..." selects PostgreSQL (pgx), anything else is
//     treated as a SQLite DSN ("file:watchlist.db", "sqlite://path", ":memory:").
//   - SecretKey: HMAC secret for signing session tokens (HS256). No default.
//   - TokenValidityDuration: session token lifetime.
//   - BcryptCost: work factor for password hashes.
//   - AllowedOrigins: CORS origins; empty disables CORS handling.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
	AllowedOrigins        []string
	LogLevel              string
	ShutdownTimeout       time.Duration
}

// LoadDefaults populates Config with development defaults. SecretKey is
// intentionally left empty.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.DatabaseDSN = "file:watchlist.db"
	c.TokenValidityDuration = time.Hour
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports configuration that would make the server unsafe or
// unusable.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidityDuration)
	}
	if c.EndpointAddr == "" {
		return errors.New("endpoint address is required")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	return nil
}
