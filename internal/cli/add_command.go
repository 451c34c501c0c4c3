package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// AddOptions holds the optional fields of a new task
type AddOptions struct {
	Detail   string
	DueDate  string
	Priority string
	Tags     string
}

// AddCommand handles the add command
type AddCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. The arguments are joined into the title.
func (c *AddCommand) Execute(ctx context.Context, args []string, opts AddOptions) error {
	input := services.TaskInput{
		Title:    strings.Join(args, " "),
		Detail:   opts.Detail,
		DueDate:  opts.DueDate,
		Priority: opts.Priority,
		Tags:     opts.Tags,
	}

	task, err := c.businessAPI.AddTask(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.out, "Added task %d: %s\n", task.ID, describeTask(task))
	return nil
}

// describeTask renders the one-line form printed after a mutation.
func describeTask(task *domain.Task) string {
	var b strings.Builder
	b.WriteString(task.Title)
	fmt.Fprintf(&b, " [%s]", task.Priority)
	if task.HasDueDate() {
		fmt.Fprintf(&b, " due %s", task.DueDateString())
	}
	if task.Done {
		b.WriteString(" (done)")
	}
	return b.String()
}
