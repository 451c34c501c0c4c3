package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
)

// Connector builds the business API once flags have been applied to the
// configuration.
type Connector func(cfg *config.Config) (api.BusinessAPI, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	api     api.BusinessAPI
	config  *config.Config
	connect Connector
	out     io.Writer
}

// NewRootCommand creates the root cobra command around an existing API
func NewRootCommand(businessAPI api.BusinessAPI, cfg *config.Config) *RootCommand {
	return newRootCommand(businessAPI, nil, cfg)
}

// NewRootCommandWithConnector creates the root cobra command and opens the
// API lazily, after global flags have been applied.
func NewRootCommandWithConnector(connect Connector, cfg *config.Config) *RootCommand {
	return newRootCommand(nil, connect, cfg)
}

func newRootCommand(businessAPI api.BusinessAPI, connect Connector, cfg *config.Config) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		api:     businessAPI,
		config:  cfg,
		connect: connect,
		out:     os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A command-line personal task tracker",
		Long: `tasks keeps a personal to-do list in a local SQLite database.

FEATURES:
  • Add tasks with a detail, due date, priority and tags
  • List open tasks first, most urgent and soonest due at the top
  • Mark tasks done or reopen them, and delete them
  • Summarize done, open and overdue tasks by priority
  • Export every task as delimited text

EXAMPLES:
  tasks add "Write report" --due 2025-03-01 --priority high
  tasks list                              # All tasks, open first
  tasks list --pending --format json      # Open tasks as JSON
  tasks done 3                            # Mark task 3 done
  tasks reopen 3                          # Mark task 3 not done
  tasks delete 3                          # Remove task 3
  tasks summary                           # Counts by status and priority
  tasks export --delimiter ';' > tasks.csv

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is read from $TASKS_CONFIG or ~/.tasks/config.yaml.
  Run 'tasks env' to list every environment variable.

GETTING HELP:
  tasks [command] --help                  # Get help for any specific command
  tasks completion bash                   # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.prepare(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs replaces os.Args, mostly for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output, mostly for tests.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// Config returns the configuration with flag overrides applied.
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TASKS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKS_DB_FILENAME)")
	flags.Duration("busy-timeout", 0, "How long a write waits on a locked database (overrides TASKS_DB_BUSY_TIMEOUT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Deadline for a single command (overrides TASKS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Log debug output to stderr (overrides TASKS_APP_VERBOSE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides TASKS_LOG_LEVEL)")

	// Commands configuration
	flags.String("list-format", "", "Default list format (overrides TASKS_LIST_DEFAULT_FORMAT)")
	flags.String("delimiter", "", "Export field delimiter (overrides TASKS_EXPORT_DELIMITER)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new task",
		Long: `Add a new open task. All arguments are joined into the title.

Priority accepts 1-3 or high, medium, low (default medium).
Due dates use the YYYY-MM-DD format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.newApp()).Execute(ctx, args, addOpts)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Detail, "detail", "d", "", "Longer description of the task")
	addCmd.Flags().StringVar(&addOpts.DueDate, "due", "", "Due date as YYYY-MM-DD")
	addCmd.Flags().StringVarP(&addOpts.Priority, "priority", "p", "", "Priority: high, medium, low or 1-3")
	addCmd.Flags().StringVarP(&addOpts.Tags, "tags", "t", "", "Comma separated tags")

	// List command
	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with open tasks first, then by priority, then by due date.
Tasks without a due date come after dated tasks of the same priority.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.newApp()).Execute(ctx, listOpts)
		},
	}
	listCmd.Flags().StringVarP(&listOpts.Format, "format", "f", "", "Output format: table, json or yaml")
	listCmd.Flags().BoolVar(&listOpts.PendingOnly, "pending", false, "Only show tasks that are not done")

	// Show command
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewShowCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Reopen command
	reopenCmd := &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a task not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewReopenCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task permanently. Deleting a task that does not exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Summary command
	var summaryFormat string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show task counts",
		Long:  "Show total, done, open and overdue counts, and done versus open tasks per priority.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.newApp()).Execute(ctx, summaryFormat)
		},
	}
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "table", "Output format: table, json or yaml")

	// Export command
	var exportOpts ExportOptions
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as delimited text",
		Long: `Export every task with a header row. Columns are
id, title, detail, created_at, due_date, priority, tags, done.

Examples:
  tasks export > tasks.csv
  tasks export --output tasks.tsv --delimiter $'\t'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.newApp()).Execute(ctx, exportOpts)
		},
	}
	exportCmd.Flags().StringVarP(&exportOpts.Output, "output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().StringVar(&exportOpts.Delimiter, "delimiter", "", "Field delimiter for this export (default from TASKS_EXPORT_DELIMITER)")

	// Env command
	envCmd := &cobra.Command{
		Use:         "env",
		Short:       "List configuration environment variables",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConnect: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			description, err := config.Describe()
			if err != nil {
				return err
			}
			fmt.Fprintln(r.out, description)
			return nil
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		doneCmd,
		reopenCmd,
		deleteCmd,
		summaryCmd,
		exportCmd,
		envCmd,
	)
}

// skipConnect marks commands that never touch the database.
const skipConnect = "skip-connect"

func needsConnection(cmd *cobra.Command) bool {
	if cmd.Annotations[skipConnect] == "true" {
		return false
	}
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return cmd.Parent() == nil || cmd.Parent().Name() != "completion"
}

// newApp builds the per-command application state
func (r *RootCommand) newApp() *App {
	app := NewAppWithConfig(r.api, r.config)
	app.SetOutput(r.out)
	return app
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// prepare applies flag overrides, validates the result and opens the API
// when the command needs it.
func (r *RootCommand) prepare(cmd *cobra.Command) error {
	r.getOverridesFromFlags().Apply(r.config)

	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if r.api != nil || r.connect == nil || !needsConnection(cmd) {
		return nil
	}

	businessAPI, err := r.connect(r.config)
	if err != nil {
		return err
	}
	r.api = businessAPI
	return nil
}

// getOverridesFromFlags collects the global flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Database configuration
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("busy-timeout") {
		v, _ := flags.GetDuration("busy-timeout")
		overrides.DBBusyTimeout = &v
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}

	// Commands configuration
	if flags.Changed("list-format") {
		v, _ := flags.GetString("list-format")
		overrides.ListDefaultFormat = &v
	}
	if flags.Changed("delimiter") {
		v, _ := flags.GetString("delimiter")
		overrides.ExportDelimiter = &v
	}

	return overrides
}
