package services

import (
	"context"
	"log/slog"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	logger        *slog.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, taskValidator *validation.TaskValidator, logger *slog.Logger) TaskService {
	if taskValidator == nil {
		taskValidator = validation.NewTaskValidator()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
		logger:        logger,
	}
}

func (t *taskServiceImpl) validateID(id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task id", err)
	}
	return nil
}

// CreateTask validates the input and stores a new open task
func (t *taskServiceImpl) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	task, err := t.taskValidator.ValidateNewTask(input.Title, input.Detail, input.DueDate, input.Priority, input.Tags)
	if err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dbTask, err := t.repo.Insert(ctx, t.mapper.Task.ToNewTask(task))
	if err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(*dbTask)
	t.logger.Debug("created task", "id", created.ID, "title", created.Title)
	return &created, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns every task in display order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListPendingTasks returns the tasks that are not done, in display order
func (t *taskServiceImpl) ListPendingTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := t.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Done {
			pending = append(pending, task)
		}
	}
	return pending, nil
}

// SetDone marks a task done or not done
func (t *taskServiceImpl) SetDone(ctx context.Context, id int64, done bool) error {
	if err := t.validateID(id); err != nil {
		return err
	}
	return t.repo.SetDone(ctx, id, done)
}

// CompleteTask marks a task done and returns its new state
func (t *taskServiceImpl) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	return t.setDoneAndGet(ctx, id, true)
}

// ReopenTask marks a task not done and returns its new state
func (t *taskServiceImpl) ReopenTask(ctx context.Context, id int64) (*domain.Task, error) {
	return t.setDoneAndGet(ctx, id, false)
}

func (t *taskServiceImpl) setDoneAndGet(ctx context.Context, id int64, done bool) (*domain.Task, error) {
	if err := t.SetDone(ctx, id, done); err != nil {
		return nil, err
	}
	t.logger.Debug("changed task status", "id", id, "done", done)
	return t.GetTask(ctx, id)
}

// DeleteTask removes a task. Deleting a missing task succeeds.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.validateID(id); err != nil {
		return err
	}
	if err := t.repo.Delete(ctx, id); err != nil {
		return err
	}
	t.logger.Debug("deleted task", "id", id)
	return nil
}
