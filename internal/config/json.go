package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/docbotdev/docbot/internal/flagx"
	"github.com/docbotdev/docbot/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file. Interval
// fields use timex.Duration so both "30s" strings and integer nanoseconds
// parse. Empty fields leave the current value untouched.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	ChatLogDir     string         `json:"chat_log_dir"`
	APIKey         string         `json:"api_key"`
	APIBaseURL     string         `json:"api_base_url"`
	Model          string         `json:"model"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flags. If neither flag is set, nothing is loaded. An unreadable
// or malformed file panics: starting with half-applied configuration would
// be worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.ChatLogDir != "" {
		config.ChatLogDir = c.ChatLogDir
	}
	if c.APIKey != "" {
		config.APIKey = c.APIKey
	}
	if c.APIBaseURL != "" {
		config.APIBaseURL = c.APIBaseURL
	}
	if c.Model != "" {
		config.Model = c.Model
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
}
