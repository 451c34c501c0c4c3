package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/export"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		businessAPI:  app.businessAPI,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command. format is table, json or yaml.
func (c *SummaryCommand) Execute(ctx context.Context, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", "table", export.FormatJSON, export.FormatYAML:
	default:
		return errors.NewInvalidInputError("format", format, "supported formats are table, json and yaml")
	}

	summary, err := c.businessAPI.GetSummary(ctx)
	if err != nil {
		return c.errorHandler.Handle("summarize tasks", err)
	}

	if format == export.FormatJSON || format == export.FormatYAML {
		return export.Write(c.out, format, summary)
	}
	return c.printSummary(summary)
}

func (c *SummaryCommand) printSummary(summary *domain.Summary) error {
	fmt.Fprintf(c.out, "Total:    %s\n", humanize.Comma(int64(summary.Total)))
	fmt.Fprintf(c.out, "Done:     %s\n", humanize.Comma(int64(summary.Done)))
	fmt.Fprintf(c.out, "Not done: %s\n", humanize.Comma(int64(summary.NotDone)))
	fmt.Fprintf(c.out, "Overdue:  %s\n", humanize.Comma(int64(summary.Overdue)))
	fmt.Fprintf(c.out, "Complete: %s%%\n", humanize.FtoaWithDigits(summary.CompletionRate()*100, 1))
	fmt.Fprintln(c.out)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tDONE\tNOT DONE")
	for _, p := range domain.Priorities {
		counts := summary.ByPriority[p]
		fmt.Fprintf(w, "%s\t%d\t%d\n", p, counts.Done, counts.NotDone)
	}
	return w.Flush()
}
