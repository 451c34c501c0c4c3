package services

import (
	"context"
	"strings"
	"testing"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) TaskService {
	service, _ := setupTaskServiceWithRepo(t)
	return service
}

func setupTaskServiceWithRepo(t *testing.T) (TaskService, sqlite.Repository) {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewTaskService(repo, nil, nil), repo
}

func mustCreate(t *testing.T, service TaskService, input TaskInput) *domain.Task {
	t.Helper()
	task, err := service.CreateTask(context.Background(), input)
	require.NoError(t, err)
	return task
}

func taskTitles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name           string
		input          TaskInput
		expectedTitle  string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:          "should create task with valid title",
			input:         TaskInput{Title: "Test Task"},
			expectedTitle: "Test Task",
		},
		{
			name:          "should trim title",
			input:         TaskInput{Title: "  Padded  "},
			expectedTitle: "Padded",
		},
		{
			name:          "should create task with all fields",
			input:         TaskInput{Title: "Full", Detail: "d", DueDate: "2030-01-02", Priority: "low", Tags: "a,b"},
			expectedTitle: "Full",
		},
		{
			name:          "should accept a due date far in the past",
			input:         TaskInput{Title: "old", DueDate: "2014-01-10"},
			expectedTitle: "old",
		},
		{
			name:          "should accept a due date far in the future",
			input:         TaskInput{Title: "later", DueDate: "2040-01-01"},
			expectedTitle: "later",
		},
		{
			name:  "should return validation error for empty title",
			input: TaskInput{Title: ""},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:  "should return validation error for whitespace-only title",
			input: TaskInput{Title: "   "},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidation(err))
			},
		},
		{
			name:  "should return validation error for very long title",
			input: TaskInput{Title: strings.Repeat("x", 300)},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:  "should return validation error for bad due date",
			input: TaskInput{Title: "ok", DueDate: "tomorrow"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "due_date")
			},
		},
		{
			name:  "should return validation error for bad priority",
			input: TaskInput{Title: "ok", Priority: "urgent"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "priority")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := setupTaskService(t)
			ctx := context.Background()

			// Act
			result, err := service.CreateTask(ctx, tt.input)

			// Assert
			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, result)

				tasks, listErr := service.ListTasks(ctx)
				require.NoError(t, listErr)
				assert.Empty(t, tasks, "a rejected task must not be stored")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Greater(t, result.ID, int64(0))
			assert.Equal(t, tt.expectedTitle, result.Title)
			assert.False(t, result.Done)
			assert.False(t, result.CreatedAt.IsZero())
		})
	}
}

func TestTaskService_CreateTask_ParsesFields(t *testing.T) {
	service := setupTaskService(t)

	task := mustCreate(t, service, TaskInput{Title: "Fields", Detail: " more ", DueDate: "2030-01-02", Priority: "h", Tags: "x y"})

	assert.Equal(t, "more", task.Detail)
	assert.Equal(t, "2030-01-02", task.DueDateString())
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, []string{"x", "y"}, task.TagList())
}

func TestTaskService_CreateTask_ConfiguredValidator(t *testing.T) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	defer repo.Close()

	tv := validation.NewTaskValidator()
	service := NewTaskService(repo, tv, nil)

	_, err = service.CreateTask(context.Background(), TaskInput{Title: strings.Repeat("a", 255)})
	assert.NoError(t, err)
}

func TestTaskService_GetTask(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()
	created := mustCreate(t, service, TaskInput{Title: "Existing"})

	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Existing", got.Title)

	_, err = service.GetTask(ctx, 999)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeNotFound))

	_, err = service.GetTask(ctx, 0)
	assert.True(t, errors.IsValidation(err))
}

func TestTaskService_ListTasks(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	tasks, err := service.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	mustCreate(t, service, TaskInput{Title: "A", Priority: "2", DueDate: "2030-01-05"})
	mustCreate(t, service, TaskInput{Title: "B", Priority: "1"})
	mustCreate(t, service, TaskInput{Title: "C", Priority: "2"})

	tasks, err = service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, taskTitles(tasks))
}

func TestTaskService_ListPendingTasks(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	done := mustCreate(t, service, TaskInput{Title: "done"})
	mustCreate(t, service, TaskInput{Title: "open"})
	require.NoError(t, service.SetDone(ctx, done.ID, true))

	pending, err := service.ListPendingTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, taskTitles(pending))
}

func TestTaskService_CompleteAndReopen(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()
	task := mustCreate(t, service, TaskInput{Title: "Toggle"})

	completed, err := service.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, completed.Done)

	reopened, err := service.ReopenTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Done)
}

func TestTaskService_SetDone_Errors(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	err := service.SetDone(ctx, 42, true)
	assert.True(t, errors.IsNotFound(err))

	_, err = service.CompleteTask(ctx, 42)
	assert.True(t, errors.IsNotFound(err))

	err = service.SetDone(ctx, -1, true)
	assert.True(t, errors.IsValidation(err))
}

func TestTaskService_DeleteTask(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()
	keep := mustCreate(t, service, TaskInput{Title: "keep"})
	drop := mustCreate(t, service, TaskInput{Title: "drop"})

	require.NoError(t, service.DeleteTask(ctx, drop.ID))
	require.NoError(t, service.DeleteTask(ctx, drop.ID), "deleting twice is not an error")

	tasks, err := service.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)

	assert.True(t, errors.IsValidation(service.DeleteTask(ctx, 0)))
}
