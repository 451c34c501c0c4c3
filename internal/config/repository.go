package config

import (
	"fmt"
	"log/slog"
	"os"

	"task-tracker/internal/repository/sqlite"
)

// CreateRepository opens the task database described by the configuration,
// creating its directory when needed.
func CreateRepository(config *Config, logger *slog.Logger) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath(),
		sqlite.WithBusyTimeout(config.Database.BusyTimeout),
		sqlite.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
