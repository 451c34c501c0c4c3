package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// TaskInput holds the raw, user-supplied fields of a new task. Priority and
// DueDate are parsed by the service.
type TaskInput struct {
	Title    string `json:"title"`
	Detail   string `json:"detail,omitempty"`
	DueDate  string `json:"due_date,omitempty"` // YYYY-MM-DD, empty for none
	Priority string `json:"priority,omitempty"` // 1-3 or high|medium|low, empty for default
	Tags     string `json:"tags,omitempty"`
}

// TaskService handles task lifecycle operations
type TaskService interface {
	// Task CRUD operations
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListPendingTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Completion workflow
	SetDone(ctx context.Context, id int64, done bool) error
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)
	ReopenTask(ctx context.Context, id int64) (*domain.Task, error)
}

// ReportingService handles aggregate views over the task set
type ReportingService interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
	GetOverdueTasks(ctx context.Context) ([]*domain.Task, error)
	Summarize(tasks []*domain.Task, now time.Time) *domain.Summary
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
}
