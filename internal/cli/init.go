// Package cli provides process bootstrap and the interactive menu. The
// menu is a thin caller: every rule lives in core and services.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"finman/internal/config"
	"finman/internal/log"
	"finman/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the
// default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.ParseLevel(level))
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitSQLite opens the SQLite repository, running migrations.
// Returns the repository or exits the process on failure.
func InitSQLite(logger *log.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}
