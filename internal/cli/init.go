// Package cli provides common initialization for the kakeibo command.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"kakeibo/internal/config"
	"kakeibo/internal/log"
	"kakeibo/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging at the given level and
// installs it as the default logger.
func SetupLogger(level string) *slog.Logger {
	return log.Setup(level)
}

// InitStore opens the SQLite ledger at the given path, running any
// pending migrations. Exits the process on failure.
func InitStore(logger *slog.Logger, dbPath string) *storage.Store {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Error("Failed to open database", log.FieldError, err, log.FieldPath, dbPath)
		os.Exit(1)
	}
	return store
}
