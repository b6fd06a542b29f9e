// Package cli provides common CLI initialization utilities.
// This package consolidates repeated initialization patterns across
// cmd/subtrackd, cmd/reminder-worker, and cmd/subtrack.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"subtrack/internal/config"
	"subtrack/internal/services"
	"subtrack/internal/storage"
)

// Backend is the full persistence surface a binary needs: the
// subscription repository plus reminder rows, with a Close for
// shutdown.
type Backend interface {
	services.Repository
	services.ReminderRepository
	Close() error
}

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenBackend opens the configured data backend.
// Returns the backend or exits the process on failure.
func OpenBackend(logger *slog.Logger, cfg *config.Config) Backend {
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Using SQLite backend", "path", cfg.SQLiteDBPath)
		return repo
	case "memory":
		logger.Info("Using in-memory backend")
		return storage.NewMemoryRepository()
	default:
		logger.Error("Unknown data backend", "backend", cfg.DataBackend)
		os.Exit(1)
		return nil
	}
}
