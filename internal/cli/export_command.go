package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize/english"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// ExportOptions holds the export command flags
type ExportOptions struct {
	Output    string
	Delimiter string
}

// ExportCommand handles the export command
type ExportCommand struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		businessAPI:  app.businessAPI,
		config:       app.config,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute writes every task as delimited text to the output file, or to
// the command output when no file is given.
func (c *ExportCommand) Execute(ctx context.Context, opts ExportOptions) error {
	delimiter := c.config.Delimiter()
	if opts.Delimiter != "" {
		if err := config.ValidateDelimiter(opts.Delimiter); err != nil {
			return errors.NewInvalidInputError("delimiter", opts.Delimiter, err.Error())
		}
		delimiter, _ = utf8.DecodeRuneInString(opts.Delimiter)
	}

	if opts.Output == "" {
		if _, err := c.businessAPI.ExportTasks(ctx, c.out, delimiter); err != nil {
			return c.errorHandler.Handle("export tasks", err)
		}
		return nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	count, err := c.businessAPI.ExportTasks(ctx, file, delimiter)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	fmt.Fprintf(c.out, "Exported %s to %s\n", english.Plural(count, "task", ""), opts.Output)
	return nil
}
