package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"todo/internal/config"
	"todo/internal/controller"
)

// Run opens the window and blocks until the user closes it
func Run(ctx context.Context, ctrl *controller.Controller, cfg *config.Config, log logrus.FieldLogger) error {
	log.Info("opening window")

	p := tea.NewProgram(New(ctx, ctrl, cfg.Display, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err = exitError(err); err != nil {
		log.WithError(err).Error("window closed with error")
		return err
	}

	log.Info("window closed")
	return nil
}

// exitError drops the error bubbletea reports when the program is killed,
// which is how a cancelled context or SIGTERM closes the window. Panics stay errors.
func exitError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrProgramPanic) {
		return nil
	}
	return err
}
