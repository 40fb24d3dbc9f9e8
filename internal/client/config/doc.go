// Package config loads runtime configuration for the watchlist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c/-config or the
//     WATCHLIST_CLI_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the watchlist server
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_address": "http://127.0.0.1:5000",
//	  "request_timeout": "10s"
//	}
package config
