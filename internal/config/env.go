package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// .env file from the working directory first if one exists. A missing .env
// is not an error.
func parseEnv(config *Config) {
	_ = godotenv.Load(".env")

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		config.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		config.APIBaseURL = v
	}
	if v := os.Getenv("DOCBOT_MODEL"); v != "" {
		config.Model = v
	}
	if v := os.Getenv("DOCBOT_DATABASE"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("DOCBOT_CHAT_LOG_DIR"); v != "" {
		config.ChatLogDir = v
	}
}
