package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/services"
)

// Row is one rendered line of the task list.
type Row struct {
	ID        uuid.UUID
	Label     string
	Completed bool
}

// Controller owns the current selection and runs the user operations against
// the task store. Failures come back as dialogs and never change the store.
type Controller struct {
	store     services.TaskStore
	errors    *ErrorHandler
	log       logrus.FieldLogger
	checkmark string
	timeout   time.Duration

	selection *uuid.UUID
}

// New creates a controller with no selection
func New(store services.TaskStore, cfg *config.Config, log logrus.FieldLogger) *Controller {
	return &Controller{
		store:     store,
		errors:    NewErrorHandler(log),
		log:       log,
		checkmark: cfg.Display.Checkmark,
		timeout:   cfg.GetQueryTimeout(),
	}
}

func (c *Controller) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Select makes the task with id the current selection
func (c *Controller) Select(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		c.selection = nil
		return errors.NewInvalidInputError("task_id", id, "task id is empty")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.Get(ctx, id); err != nil {
		c.selection = nil
		return err
	}
	c.selection = &id
	return nil
}

// ClearSelection drops the current selection
func (c *Controller) ClearSelection() {
	c.selection = nil
}

// SelectedID returns the selected task id, if any
func (c *Controller) SelectedID() (uuid.UUID, bool) {
	if c.selection == nil {
		return uuid.Nil, false
	}
	return *c.selection, true
}

// Selected resolves the selection. A selection whose task is gone is cleared.
func (c *Controller) Selected(ctx context.Context) (*domain.Task, bool) {
	if c.selection == nil {
		return nil, false
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	task, err := c.store.Get(ctx, *c.selection)
	if err != nil {
		if !c.errors.IsNotFoundError(err) {
			c.log.WithError(err).Warn("failed to resolve selection")
		}
		c.selection = nil
		return nil, false
	}
	return task, true
}

// Detail returns the detail pane text, empty when nothing is selected
func (c *Controller) Detail(ctx context.Context) string {
	task, ok := c.Selected(ctx)
	if !ok {
		return ""
	}
	return task.Details()
}

// Rows renders every task in insertion order
func (c *Controller) Rows(ctx context.Context) ([]Row, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tasks, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{
			ID:        t.ID,
			Label:     t.Label(c.checkmark),
			Completed: t.Completed,
		})
	}
	return rows, nil
}

// NewAddForm returns the blank add form
func (c *Controller) NewAddForm() Form {
	return Form{Priority: domain.DefaultPriority}
}

// NewEditForm returns a form filled from the selected task
func (c *Controller) NewEditForm(ctx context.Context) (Form, *Dialog) {
	task, ok := c.Selected(ctx)
	if !ok {
		return Form{}, c.errors.Handle("edit task", errors.NewNoSelectionError("edit task"))
	}
	return formFromTask(task), nil
}

// AddTask appends a task built from form
func (c *Controller) AddTask(ctx context.Context, form Form) *Dialog {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	task, err := c.store.Add(ctx, form.Title, form.Description, form.Priority)
	if err != nil {
		return c.errors.Handle("add task", err)
	}

	c.log.WithField("task_id", task.ID).Info("task added")
	return nil
}

// EditTask overwrites the selected task with form
func (c *Controller) EditTask(ctx context.Context, form Form) *Dialog {
	id, err := c.requireSelection("edit task")
	if err != nil {
		return c.errors.Handle("edit task", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.Update(ctx, id, form.Title, form.Description, form.Priority); err != nil {
		return c.handleSelected("edit task", err)
	}

	c.log.WithField("task_id", id).Info("task edited")
	return nil
}

// DeleteTask removes the selected task and clears the selection
func (c *Controller) DeleteTask(ctx context.Context) *Dialog {
	id, err := c.requireSelection("delete task")
	if err != nil {
		return c.errors.Handle("delete task", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.store.Remove(ctx, id); err != nil {
		return c.handleSelected("delete task", err)
	}

	c.selection = nil
	c.log.WithField("task_id", id).Info("task deleted")
	return nil
}

// MarkComplete flags the selected task as done
func (c *Controller) MarkComplete(ctx context.Context) *Dialog {
	id, err := c.requireSelection("mark complete")
	if err != nil {
		return c.errors.Handle("mark complete", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.MarkComplete(ctx, id); err != nil {
		return c.handleSelected("mark complete", err)
	}

	c.log.WithField("task_id", id).Info("task marked complete")
	return SuccessDialog(MsgMarkedComplete)
}

func (c *Controller) requireSelection(operation string) (uuid.UUID, error) {
	if c.selection == nil {
		return uuid.Nil, errors.NewNoSelectionError(operation)
	}
	return *c.selection, nil
}

// handleSelected maps a vanished selected task to the no-selection dialog
func (c *Controller) handleSelected(operation string, err error) *Dialog {
	if c.errors.IsNotFoundError(err) {
		c.selection = nil
		return c.errors.Handle(operation, errors.NewNoSelectionError(operation))
	}
	return c.errors.Handle(operation, err)
}
