package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/export"
	"task-tracker/internal/services"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	tasks  []*domain.Task
	nextID int64

	// err, when set, is returned by every method
	err error

	// recorded calls
	lastInput services.TaskInput
	lastList  api.ListOptions
}

// newMockBusinessAPI creates a new mock BusinessAPI instance
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{nextID: 1}
}

func (m *mockBusinessAPI) AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.NewValidationError("title is required", nil)
	}

	priority, err := domain.ParsePriority(input.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), nil)
	}
	due, err := domain.ParseDueDate(input.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("due_date has invalid format", err)
	}

	task := &domain.Task{
		ID:        m.nextID,
		Title:     strings.TrimSpace(input.Title),
		Detail:    input.Detail,
		CreatedAt: timeNow().UTC(),
		DueDate:   due,
		Priority:  priority,
		Tags:      input.Tags,
	}
	m.nextID++
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *mockBusinessAPI) setDone(id int64, done bool) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, task := range m.tasks {
		if task.ID == id {
			task.Done = done
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

func (m *mockBusinessAPI) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	return m.setDone(id, true)
}

func (m *mockBusinessAPI) ReopenTask(ctx context.Context, id int64) (*domain.Task, error) {
	return m.setDone(id, false)
}

func (m *mockBusinessAPI) DeleteTask(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockBusinessAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, task := range m.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

func (m *mockBusinessAPI) ListTasks(ctx context.Context, opts api.ListOptions) ([]*domain.Task, error) {
	m.lastList = opts
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if opts.PendingOnly && task.Done {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

func (m *mockBusinessAPI) GetOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*domain.Task
	for _, task := range m.tasks {
		if task.IsOverdue(timeNow()) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *mockBusinessAPI) GetSummary(ctx context.Context) (*domain.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	summary := &domain.Summary{ByPriority: make(map[domain.Priority]domain.StatusCounts)}
	for _, task := range m.tasks {
		summary.Total++
		counts := summary.ByPriority[task.Priority]
		if task.Done {
			summary.Done++
			counts.Done++
		} else {
			summary.NotDone++
			counts.NotDone++
		}
		summary.ByPriority[task.Priority] = counts
		if task.IsOverdue(timeNow()) {
			summary.Overdue++
		}
	}
	return summary, nil
}

func (m *mockBusinessAPI) ExportTasks(ctx context.Context, w io.Writer, delimiter rune) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if err := export.WriteDelimited(w, m.tasks, delimiter); err != nil {
		return 0, err
	}
	return len(m.tasks), nil
}

// setupTestApp returns an App over a fresh mock that writes into the
// returned buffer.
func setupTestApp(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()

	mock := newMockBusinessAPI()
	app := NewAppWithConfig(mock, config.NewConfig())
	out := &bytes.Buffer{}
	app.SetOutput(out)
	return app, mock, out
}

// freezeTime pins timeNow for the duration of the test.
func freezeTime(t *testing.T, now time.Time) {
	t.Helper()

	original := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = original })
}

func datePtr(s string) *time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &d
}
