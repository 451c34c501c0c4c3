package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/export"
)

// ListOptions holds the list command flags
type ListOptions struct {
	Format      string
	PendingOnly bool
}

// ListCommand handles the list command
type ListCommand struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		businessAPI:  app.businessAPI,
		config:       app.config,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = c.config.Commands.ListDefaultFormat
	}

	switch format {
	case "table", export.FormatJSON, export.FormatYAML:
	default:
		return errors.NewInvalidInputError("format", opts.Format, "supported formats are table, json and yaml")
	}

	tasks, err := c.businessAPI.ListTasks(ctx, api.ListOptions{PendingOnly: opts.PendingOnly})
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	switch format {
	case export.FormatJSON:
		return export.WriteJSON(c.out, tasks)
	case export.FormatYAML:
		return export.WriteYAML(c.out, tasks)
	default:
		return c.printTable(tasks)
	}
}

// printTable prints one row per task in storage order.
func (c *ListCommand) printTable(tasks []*domain.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found")
		return nil
	}

	now := timeNow()
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE\tTAGS")
	for _, task := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			statusMark(task, now),
			task.Priority,
			formatDue(task, c.config.Display, now),
			task.Title,
			strings.Join(task.TagList(), ", "),
		)
	}
	return w.Flush()
}

// formatDue renders a due date, adding the relative day when the display
// settings ask for it.
func formatDue(task *domain.Task, display config.DisplayConfig, now time.Time) string {
	if !task.HasDueDate() {
		return "-"
	}
	date := task.DueDate.Format(display.DateFormat)
	if !display.RelativeDates {
		return date
	}
	return fmt.Sprintf("%s (%s)", date, relativeDay(*task.DueDate, now))
}

func statusMark(task *domain.Task, now time.Time) string {
	switch {
	case task.Done:
		return "[x]"
	case task.IsOverdue(now):
		return "[!]"
	default:
		return "[ ]"
	}
}

// relativeDay describes a calendar date relative to the day of now.
func relativeDay(day time.Time, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	return humanize.RelTime(day, today, "ago", "from now")
}
