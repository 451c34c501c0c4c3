package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Commands    CommandsConfig    `yaml:"commands"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir         string        `yaml:"dir" env:"TASKS_DB_DIR" env-description:"directory holding the database file (default ~/.tasks)"`
	Filename    string        `yaml:"filename" env:"TASKS_DB_FILENAME" env-default:"tasks.db" env-description:"database file name"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"TASKS_DB_BUSY_TIMEOUT" env-default:"5s" env-description:"how long a write waits on a locked database"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `yaml:"title_max" env:"TASKS_VALIDATION_TITLE_MAX" env-default:"255" env-description:"maximum task title length in characters"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat    string `yaml:"date_format" env:"TASKS_DISPLAY_DATE_FORMAT" env-default:"2006-01-02" env-description:"Go layout used to print dates"`
	RelativeDates bool   `yaml:"relative_dates" env:"TASKS_DISPLAY_RELATIVE_DATES" env-default:"true" env-description:"show due dates as '3 days from now' in tables"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `yaml:"timeout" env:"TASKS_APP_TIMEOUT" env-default:"60s" env-description:"deadline for a single command"`
	Verbose  bool          `yaml:"verbose" env:"TASKS_APP_VERBOSE" env-description:"log debug output to stderr"`
	LogLevel string        `yaml:"log_level" env:"TASKS_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ListDefaultFormat string `yaml:"list_format" env:"TASKS_LIST_DEFAULT_FORMAT" env-default:"table" env-description:"default output of 'list': table, json or yaml"`
	ExportDelimiter   string `yaml:"export_delimiter" env:"TASKS_EXPORT_DELIMITER" env-default:"," env-description:"field delimiter used by 'export'"`
}

// ListFormats are the accepted values of Commands.ListDefaultFormat.
var ListFormats = []string{"table", "json", "yaml"}

// LogLevels are the accepted values of Application.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultDir returns ~/.tasks, or .tasks when the home directory is unknown.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tasks"
	}
	return filepath.Join(homeDir, ".tasks")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:         DefaultDir(),
			Filename:    "tasks.db",
			BusyTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			DateFormat:    "2006-01-02",
			RelativeDates: true,
		},
		Application: ApplicationConfig{
			Timeout:  60 * time.Second,
			Verbose:  false,
			LogLevel: "info",
		},
		Commands: CommandsConfig{
			ListDefaultFormat: "table",
			ExportDelimiter:   ",",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Delimiter returns the export delimiter as a rune. Validate guarantees it is
// a single character.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Commands.ExportDelimiter)
	return r
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max", Message: "title maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if !contains(LogLevels, strings.ToLower(c.Application.LogLevel)) {
		return &ConfigError{Field: "application.log_level", Message: fmt.Sprintf("log level must be one of %s", strings.Join(LogLevels, ", "))}
	}

	// Validate commands configuration
	if !contains(ListFormats, c.Commands.ListDefaultFormat) {
		return &ConfigError{Field: "commands.list_format", Message: fmt.Sprintf("list format must be one of %s", strings.Join(ListFormats, ", "))}
	}
	if err := ValidateDelimiter(c.Commands.ExportDelimiter); err != nil {
		return &ConfigError{Field: "commands.export_delimiter", Message: err.Error()}
	}

	return nil
}

// ValidateDelimiter checks that s can separate fields of a delimited export.
func ValidateDelimiter(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("delimiter %q is not allowed", s)
	}
	return nil
}

// Describe lists the environment variables understood by the application.
func Describe() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&Config{}, &header)
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
