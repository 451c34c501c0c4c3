package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
	now         func() time.Time
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService) ReportingService {
	return &reportingServiceImpl{
		taskService: taskService,
		now:         time.Now,
	}
}

// GetSummary counts all tasks by completion, priority and overdue status
func (r *reportingServiceImpl) GetSummary(ctx context.Context) (*domain.Summary, error) {
	tasks, err := r.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return r.Summarize(tasks, r.now()), nil
}

// GetOverdueTasks returns open tasks whose due date has passed, in display order
func (r *reportingServiceImpl) GetOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := r.taskService.ListPendingTasks(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	overdue := make([]*domain.Task, 0)
	for _, task := range tasks {
		if task.IsOverdue(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}

// Summarize aggregates tasks into a Summary. Every defined priority has an
// entry in ByPriority, even when it has no tasks.
func (r *reportingServiceImpl) Summarize(tasks []*domain.Task, now time.Time) *domain.Summary {
	summary := &domain.Summary{
		ByPriority: make(map[domain.Priority]domain.StatusCounts, len(domain.Priorities)),
	}
	for _, p := range domain.Priorities {
		summary.ByPriority[p] = domain.StatusCounts{}
	}

	for _, task := range tasks {
		summary.Total++

		counts := summary.ByPriority[task.Priority]
		if task.Done {
			summary.Done++
			counts.Done++
		} else {
			counts.NotDone++
		}
		summary.ByPriority[task.Priority] = counts

		if task.IsOverdue(now) {
			summary.Overdue++
		}
	}

	summary.NotDone = summary.Total - summary.Done
	return summary
}
