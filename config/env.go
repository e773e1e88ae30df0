package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory when present.
func LoadEnv() {
	// A missing .env is fine, env vars can be set by other means.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
		return
	}
	slog.Debug("environment variables loaded from .env")
}
