package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"todo/internal/config"
)

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Level picks the log level for cfg
func Level(cfg config.LoggingConfig) logrus.Level {
	if cfg.Verbose || DebugEnabled() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// New builds the application logger. The terminal belongs to the UI, so output
// goes to cfg.File or is discarded. The returned func closes the file.
func New(cfg config.LoggingConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetLevel(Level(cfg))
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

// Discard returns a logger that writes nowhere
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
