// Package config loads runtime configuration for the Beerter CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Environment variables BEERTER_* (see parseEnv). A dotenv file given
//     with -e or -env-file, or ./.env when present, is loaded first.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Beerter API
//	-d string   path of the session database
//	-t int      request timeout (seconds, 0 disables)
//	-l string   log level
//	-m          keep the session in memory only
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8009",
//	  "session_db_path": "beerter.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "ephemeral": false
//	}
package config
