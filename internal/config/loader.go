package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	QueryTimeout *time.Duration

	WindowTitle *string
	ListWidth   *int
	Checkmark   *string

	LogFile *string
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.QueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.QueryTimeout
	}

	if overrides.WindowTitle != nil {
		config.Display.WindowTitle = *overrides.WindowTitle
	}
	if overrides.ListWidth != nil {
		config.Display.ListWidth = *overrides.ListWidth
	}
	if overrides.Checkmark != nil {
		config.Display.Checkmark = *overrides.Checkmark
	}

	if overrides.LogFile != nil {
		config.Logging.File = *overrides.LogFile
	}
	if overrides.Verbose != nil {
		config.Logging.Verbose = *overrides.Verbose
	}
}
