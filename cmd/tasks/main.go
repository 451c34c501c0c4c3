package main

import (
	"fmt"
	"log/slog"
	"os"

	"task-tracker/internal/api"
	"task-tracker/internal/cli"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger := logging.Discard()
	var repo sqlite.Repository
	defer func() {
		if repo != nil {
			if err := repo.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
	}()

	// The repository is opened only after flags have been applied to cfg
	connect := func(cfg *config.Config) (api.BusinessAPI, error) {
		logger = logging.New(cfg.Application.LogLevel, cfg.Application.Verbose)
		slog.SetDefault(logger)

		env := getEnvironment()
		logger.Debug("opening task database", "env", env, "path", cfg.GetDatabasePath())

		opened, err := NewRepositoryFactory(env, logger).CreateRepository(cfg)
		if err != nil {
			return nil, err
		}
		repo = opened

		container := services.NewServiceContainer(repo, validation.NewTaskValidatorWithConfig(cfg), logger)
		return api.NewBusinessAPI(container), nil
	}

	root := cli.NewRootCommandWithConnector(connect, cfg)
	if err := root.Execute(); err != nil {
		if errors.ShouldLogError(err) {
			logger.Error("command failed", "error", err, "code", errors.GetErrorCode(err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
