package config

import (
	"encoding/json"
	"os"

	"github.com/WayleX/Beerter/internal/flagx"
	"github.com/WayleX/Beerter/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so a partial file only overrides
// what it mentions.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	SessionDBPath  *string         `json:"session_db_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	Ephemeral      *bool           `json:"ephemeral"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no JSON and no error.
func parseJSON(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFileFlag(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	return nil
}
