package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the Beerter CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the remote Beerter API.
//   - SessionDBPath: SQLite file the session token is persisted in.
//   - RequestTimeout: upper bound for a single API call; 0 disables it.
//   - LogLevel: debug, info, warn or error.
//   - Ephemeral: keep the session in memory only (nothing written to disk).
type Config struct {
	APIBaseURL     string        `env:"BEERTER_API_URL"`
	SessionDBPath  string        `env:"BEERTER_SESSION_DB"`
	RequestTimeout time.Duration `env:"BEERTER_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"BEERTER_LOG_LEVEL"`
	Ephemeral      bool          `env:"BEERTER_EPHEMERAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8009"
	c.SessionDBPath = "beerter.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.Ephemeral = false
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// environment variables and command-line flags, in that order. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.Environ())
}

func load(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg, args, environ); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if !c.Ephemeral && c.SessionDBPath == "" {
		return fmt.Errorf("session db path is required unless the session is ephemeral")
	}
	return nil
}
