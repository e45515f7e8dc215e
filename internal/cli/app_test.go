package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/controller"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "todo.log")
	cfg.Logging.Verbose = true

	app, err := NewApp(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	ctrl := app.Controller()
	require.Nil(t, ctrl.AddTask(ctx, controller.Form{Title: "Wired", Priority: 2}))

	rows, err := ctrl.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wired (Priority: 2)", rows[0].Label)

	require.NoError(t, app.Close())

	logged, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "task added")
}

func TestNewApp_StartsEmpty(t *testing.T) {
	cfg := config.NewConfig()

	first, err := NewApp(cfg)
	require.NoError(t, err)
	require.Nil(t, first.Controller().AddTask(context.Background(), controller.Form{Title: "Lost", Priority: 1}))
	require.NoError(t, first.Close())

	second, err := NewApp(cfg)
	require.NoError(t, err)
	defer second.Close()

	rows, err := second.Controller().Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNewApp_BadLogFile(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "missing", "todo.log")

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.QueryTimeout = 0

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
