// Package config handles configuration for DocBot: built-in defaults, an
// optional .env file and environment variables, an optional JSON overlay,
// and command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the DocBot CLI.
//
// Fields:
//   - DatabaseDSN: path of the local credential database file.
//   - ChatLogDir: directory where chat logs are exported.
//   - APIKey / APIBaseURL / Model: settings of the external assistant API.
//   - RequestTimeout: per-request timeout for assistant calls.
type Config struct {
	DatabaseDSN    string
	ChatLogDir     string
	APIKey         string
	APIBaseURL     string
	Model          string
	RequestTimeout time.Duration
}

// LoadDefaults populates Config with development defaults. The API key has
// no default and must come from the environment or a config file.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "docbot.db"
	c.ChatLogDir = "chat_logs"
	c.Model = "gpt-4o-mini"
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
