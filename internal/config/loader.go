package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names the variable pointing at an optional YAML config file.
const ConfigPathEnv = "TASKS_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	path string
}

// NewLoader creates a loader reading $TASKS_CONFIG or ~/.tasks/config.yaml
func NewLoader() *Loader {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.yaml")
	}
	return NewLoaderWithPath(path)
}

// NewLoaderWithPath creates a loader reading the given YAML file, if present.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the config file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults (env-default tags)
// 2. Override with the YAML file, when it exists
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	var cfg Config

	if l.fileExists() {
		if err := cleanenv.ReadConfig(l.path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %q: %w", l.path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read environment: %w", err)
		}
	}

	if cfg.Database.Dir == "" {
		cfg.Database.Dir = DefaultDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) fileExists() bool {
	if l.path == "" {
		return false
	}
	info, err := os.Stat(l.path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields leave the
// loaded value alone.
type ConfigOverrides struct {
	// Database overrides
	DBDir         *string
	DBFilename    *string
	DBBusyTimeout *time.Duration

	// Validation overrides
	TitleMaxLength *int

	// Display overrides
	DateFormat    *string
	RelativeDates *bool

	// Application overrides
	Timeout  *time.Duration
	Verbose  *bool
	LogLevel *string

	// Commands overrides
	ListDefaultFormat *string
	ExportDelimiter   *string
}

// Apply copies every set override into config.
func (o *ConfigOverrides) Apply(config *Config) {
	// Database overrides
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBBusyTimeout != nil {
		config.Database.BusyTimeout = *o.DBBusyTimeout
	}

	// Validation overrides
	if o.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *o.TitleMaxLength
	}

	// Display overrides
	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if o.RelativeDates != nil {
		config.Display.RelativeDates = *o.RelativeDates
	}

	// Application overrides
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		config.Application.LogLevel = *o.LogLevel
	}

	// Commands overrides
	if o.ListDefaultFormat != nil {
		config.Commands.ListDefaultFormat = *o.ListDefaultFormat
	}
	if o.ExportDelimiter != nil {
		config.Commands.ExportDelimiter = *o.ExportDelimiter
	}
}
