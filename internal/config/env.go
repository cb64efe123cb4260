package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads environment variables from .env/.env.local before the
// YAML is expanded. Existing process environment variables are never
// overridden. A missing file is not an error.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Debug("Skipping env file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
	}
}
