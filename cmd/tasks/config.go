package main

import (
	"fmt"
	"log/slog"
	"os"

	"task-tracker/internal/config"
	"task-tracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// EnvironmentVar selects the environment.
const EnvironmentVar = "TASKS_ENV"

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	logger *slog.Logger
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, logger *slog.Logger) *RepositoryFactory {
	return &RepositoryFactory{env: env, logger: logger}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository(cfg)
	case Testing:
		return rf.createTestingRepository()
	default:
		return config.CreateRepository(cfg, rf.logger)
	}
}

// createDevelopmentRepository keeps the database next to the working
// directory so development runs never touch the real task list.
func (rf *RepositoryFactory) createDevelopmentRepository(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.New(cfg.Database.Filename,
		sqlite.WithBusyTimeout(cfg.Database.BusyTimeout),
		sqlite.WithLogger(rf.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database that vanishes on exit
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath, sqlite.WithLogger(rf.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch Environment(os.Getenv(EnvironmentVar)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
