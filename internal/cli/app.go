package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"todo/internal/config"
	"todo/internal/controller"
	"todo/internal/logging"
	"todo/internal/repository/sqlite"
	"todo/internal/services"
	"todo/internal/tui"
)

// App holds everything the window needs for one run
type App struct {
	config   *config.Config
	log      *logrus.Logger
	closeLog func() error
	repo     sqlite.Repository
	ctrl     *controller.Controller
}

// NewApp wires logging, the in-memory task store and the controller
func NewApp(cfg *config.Config) (*App, error) {
	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to create task store: %w", err)
	}

	store := services.NewTaskStore(repo, log)

	return &App{
		config:   cfg,
		log:      log,
		closeLog: closeLog,
		repo:     repo,
		ctrl:     controller.New(store, cfg, log),
	}, nil
}

// Controller returns the controller driving the window
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run opens the window and blocks until it closes
func (a *App) Run(ctx context.Context) error {
	return tui.Run(ctx, a.ctrl, a.config, a.log)
}

// Close releases the task store and the log file
func (a *App) Close() error {
	repoErr := a.repo.Close()
	logErr := a.closeLog()
	if repoErr != nil {
		return repoErr
	}
	return logErr
}

// LaunchApp is the production Launcher
func LaunchApp(ctx context.Context, cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
