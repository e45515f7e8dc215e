package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty TODO_DEBUG should disable debug")

	t.Setenv("TODO_DEBUG", "1")
	assert.True(t, DebugEnabled(), "any TODO_DEBUG value should enable debug")
}

func TestLevel(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")

	assert.Equal(t, logrus.InfoLevel, Level(config.LoggingConfig{}))
	assert.Equal(t, logrus.DebugLevel, Level(config.LoggingConfig{Verbose: true}))

	t.Setenv("TODO_DEBUG", "true")
	assert.Equal(t, logrus.DebugLevel, Level(config.LoggingConfig{}))
}

func TestNew_WritesToFile(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	path := filepath.Join(t.TempDir(), "todo.log")

	logger, closeFn, err := New(config.LoggingConfig{File: path})
	require.NoError(t, err)

	logger.WithField("task_id", "abc").Info("task added")
	logger.Debug("hidden at info level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "task added")
	assert.Contains(t, string(data), "task_id=abc")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_NoFileDiscards(t *testing.T) {
	logger, closeFn, err := New(config.LoggingConfig{})
	require.NoError(t, err)

	logger.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(config.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "todo.log")})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().WithField("k", "v").Warn("dropped")
	})
}
