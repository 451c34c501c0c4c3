package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// DoneCommand handles the done and reopen commands, which differ only in
// the completion state they set.
type DoneCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
	done         bool
}

// NewDoneCommand creates a handler that marks a task done
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
		done:         true,
	}
}

// NewReopenCommand creates a handler that marks a task not done
func NewReopenCommand(app *App) *DoneCommand {
	cmd := NewDoneCommand(app)
	cmd.done = false
	return cmd
}

// Execute runs the command against the task ID in args[0]
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if c.done {
		task, err := c.businessAPI.CompleteTask(ctx, id)
		if err != nil {
			return c.errorHandler.Handle("complete task", err)
		}
		fmt.Fprintf(c.out, "Completed task %d: %s\n", task.ID, describeTask(task))
		return nil
	}

	task, err := c.businessAPI.ReopenTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("reopen task", err)
	}
	fmt.Fprintf(c.out, "Reopened task %d: %s\n", task.ID, describeTask(task))
	return nil
}
