package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database DatabaseConfig
	Display  DisplayConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds task store configuration. The store is always in memory.
type DatabaseConfig struct {
	QueryTimeout time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
}

// DisplayConfig holds window rendering configuration
type DisplayConfig struct {
	WindowTitle string `env:"TODO_DISPLAY_TITLE"`
	ListWidth   int    `env:"TODO_DISPLAY_LIST_WIDTH"` // 0 splits the window evenly
	Checkmark   string `env:"TODO_DISPLAY_CHECKMARK"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File    string `env:"TODO_LOG_FILE"` // empty discards log output
	Verbose bool   `env:"TODO_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			QueryTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			WindowTitle: "TODO List Application",
			ListWidth:   0,
			Checkmark:   "✓ ",
		},
		Logging: LoggingConfig{
			File:    "",
			Verbose: false,
		},
	}
}

// GetQueryTimeout returns the task store query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "database.query_timeout", Message: fmt.Sprintf("TODO_DB_QUERY_TIMEOUT %q is not a duration", timeout)}
		}
		c.Database.QueryTimeout = d
	}

	// Display configuration
	if title := os.Getenv("TODO_DISPLAY_TITLE"); title != "" {
		c.Display.WindowTitle = title
	}
	if width := os.Getenv("TODO_DISPLAY_LIST_WIDTH"); width != "" {
		w, err := strconv.Atoi(width)
		if err != nil {
			return &ConfigError{Field: "display.list_width", Message: fmt.Sprintf("TODO_DISPLAY_LIST_WIDTH %q is not an integer", width)}
		}
		c.Display.ListWidth = w
	}
	if mark := os.Getenv("TODO_DISPLAY_CHECKMARK"); mark != "" {
		c.Display.Checkmark = mark
	}

	// Logging configuration
	if file := os.Getenv("TODO_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if verbose := os.Getenv("TODO_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return &ConfigError{Field: "logging.verbose", Message: fmt.Sprintf("TODO_VERBOSE %q is not a boolean", verbose)}
		}
		c.Logging.Verbose = b
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Display.WindowTitle == "" {
		return &ConfigError{Field: "display.window_title", Message: "window title cannot be empty"}
	}
	if c.Display.ListWidth < 0 {
		return &ConfigError{Field: "display.list_width", Message: "list width cannot be negative"}
	}
	if c.Display.ListWidth > 0 && c.Display.ListWidth < 20 {
		return &ConfigError{Field: "display.list_width", Message: "list width must be at least 20"}
	}
	if c.Display.Checkmark == "" {
		return &ConfigError{Field: "display.checkmark", Message: "checkmark cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
