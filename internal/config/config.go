package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Database
	DBPath string

	// CSV export target directory
	ExportDir string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DBPath:    getEnv("KAKEIBO_DB_PATH", defaultDBPath()),
		ExportDir: getEnv("KAKEIBO_EXPORT_DIR", "."),
		LogLevel:  getEnv("KAKEIBO_LOG_LEVEL", "info"),
	}
}

// defaultDBPath is ~/.kakeibo/kakeibo.db, falling back to the working
// directory when the home directory is unknown.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "kakeibo.db"
	}
	return filepath.Join(home, ".kakeibo", "kakeibo.db")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}
	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
