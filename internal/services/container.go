package services

import (
	"log/slog"

	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// NewServiceContainer wires the services around a repository
func NewServiceContainer(repo sqlite.Repository, taskValidator *validation.TaskValidator, logger *slog.Logger) *ServiceContainer {
	taskService := NewTaskService(repo, taskValidator, logger)
	return &ServiceContainer{
		TaskService:      taskService,
		ReportingService: NewReportingService(taskService),
	}
}
