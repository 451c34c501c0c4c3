package api

import (
	"context"
	"io"

	"task-tracker/internal/domain"
	"task-tracker/internal/export"
	"task-tracker/internal/services"
)

// ListOptions narrows the task list.
type ListOptions struct {
	PendingOnly bool `json:"pending_only,omitempty"`
}

// BusinessAPI defines the operations the presentation layer may perform on tasks
type BusinessAPI interface {
	// ========== Task Management Workflows ==========

	// AddTask validates the input and stores a new open task
	AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error)

	// CompleteTask marks a task done
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)

	// ReopenTask marks a done task as not done again
	ReopenTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task; removing a missing task succeeds
	DeleteTask(ctx context.Context, id int64) error

	// ========== Query Operations ==========

	// GetTask returns a single task by ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns tasks open-first, then by priority, then by due date
	ListTasks(ctx context.Context, opts ListOptions) ([]*domain.Task, error)

	// GetOverdueTasks returns open tasks whose due date has passed
	GetOverdueTasks(ctx context.Context) ([]*domain.Task, error)

	// ========== Reporting ==========

	// GetSummary returns aggregate counts over all tasks
	GetSummary(ctx context.Context) (*domain.Summary, error)

	// ExportTasks writes every task in delimited form and returns how many were written
	ExportTasks(ctx context.Context, w io.Writer, delimiter rune) (int, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	tasks     services.TaskService
	reporting services.ReportingService
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		tasks:     container.TaskService,
		reporting: container.ReportingService,
	}
}

// ========== Task Management Workflows ==========

func (b *businessAPIImpl) AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error) {
	return b.tasks.CreateTask(ctx, input)
}

func (b *businessAPIImpl) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	return b.tasks.CompleteTask(ctx, id)
}

func (b *businessAPIImpl) ReopenTask(ctx context.Context, id int64) (*domain.Task, error) {
	return b.tasks.ReopenTask(ctx, id)
}

func (b *businessAPIImpl) DeleteTask(ctx context.Context, id int64) error {
	return b.tasks.DeleteTask(ctx, id)
}

// ========== Query Operations ==========

func (b *businessAPIImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return b.tasks.GetTask(ctx, id)
}

func (b *businessAPIImpl) ListTasks(ctx context.Context, opts ListOptions) ([]*domain.Task, error) {
	if opts.PendingOnly {
		return b.tasks.ListPendingTasks(ctx)
	}
	return b.tasks.ListTasks(ctx)
}

func (b *businessAPIImpl) GetOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	return b.reporting.GetOverdueTasks(ctx)
}

// ========== Reporting ==========

func (b *businessAPIImpl) GetSummary(ctx context.Context) (*domain.Summary, error) {
	return b.reporting.GetSummary(ctx)
}

func (b *businessAPIImpl) ExportTasks(ctx context.Context, w io.Writer, delimiter rune) (int, error) {
	tasks, err := b.tasks.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	if err := export.WriteDelimited(w, tasks, delimiter); err != nil {
		return 0, err
	}
	return len(tasks), nil
}
