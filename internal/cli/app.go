package cli

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	out         io.Writer
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(businessAPI api.BusinessAPI) *App {
	return NewAppWithConfig(businessAPI, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance writing to stdout
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         os.Stdout,
	}
}

// SetOutput redirects command output, mostly for tests.
func (a *App) SetOutput(w io.Writer) {
	if w != nil {
		a.out = w
	}
}

// parseTaskID converts a command argument into a task ID.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "task id must be a positive whole number")
	}
	return id, nil
}
