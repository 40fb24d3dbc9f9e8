package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/watchlist/internal/flagx"
)

const (
	envConfigFile     = "WATCHLIST_CONFIG"
	envEndpointAddr   = "WATCHLIST_ADDR"
	envDatabaseDSN    = "WATCHLIST_DATABASE_DSN"
	envSecretKey      = "WATCHLIST_SECRET_KEY"
	envTokenValidity  = "WATCHLIST_TOKEN_VALIDITY"
	envBcryptCost     = "WATCHLIST_BCRYPT_COST"
	envAllowedOrigins = "WATCHLIST_ALLOWED_ORIGINS"
	envLogLevel       = "WATCHLIST_LOG_LEVEL"
)

// parseEnv overlays values from WATCHLIST_* environment variables. Set but
// unparsable numeric values panic, like an invalid config file.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envEndpointAddr); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envTokenValidity); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envTokenValidity, err))
		}
		config.TokenValidityDuration = d
	}
	if v, ok := os.LookupEnv(envBcryptCost); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envBcryptCost, err))
		}
		config.BcryptCost = n
	}
	if v, ok := os.LookupEnv(envAllowedOrigins); ok {
		config.AllowedOrigins = flagx.SplitList(v)
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		config.LogLevel = v
	}
}
