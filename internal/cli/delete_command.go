package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. Deleting an ID that does not exist
// succeeds with the same confirmation.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := c.businessAPI.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.out, "Deleted task %d\n", id)
	return nil
}
