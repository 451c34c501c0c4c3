package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// ShowCommand handles the show command
type ShowCommand struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		businessAPI:  app.businessAPI,
		config:       app.config,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints every field of one task
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.businessAPI.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}
	return c.printTask(task)
}

func (c *ShowCommand) printTask(task *domain.Task) error {
	now := timeNow()

	status := "open"
	if task.Done {
		status = "done"
	} else if task.IsOverdue(now) {
		status = "overdue"
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", task.ID)
	fmt.Fprintf(w, "Title:\t%s\n", task.Title)
	fmt.Fprintf(w, "Status:\t%s\n", status)
	fmt.Fprintf(w, "Priority:\t%s\n", task.Priority)
	fmt.Fprintf(w, "Due:\t%s\n", formatDue(task, c.config.Display, now))
	fmt.Fprintf(w, "Created:\t%s (%s)\n", task.CreatedAt.Local().Format(c.config.Display.DateFormat), humanize.RelTime(task.CreatedAt, now, "ago", "from now"))
	fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(task.TagList(), ", "))
	if task.Detail != "" {
		fmt.Fprintf(w, "Detail:\t%s\n", task.Detail)
	}
	return w.Flush()
}
