package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/repository/sqlite"
	"todo/internal/validation"
)

// taskStoreImpl implements the TaskStore interface
type taskStoreImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	log           logrus.FieldLogger
}

// NewTaskStore creates a new TaskStore backed by repo
func NewTaskStore(repo sqlite.Repository, log logrus.FieldLogger) TaskStore {
	return &taskStoreImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		log:           log,
	}
}

// validateFields checks title and priority and returns the trimmed title
func (s *taskStoreImpl) validateFields(title string, priority int) (string, error) {
	if err := s.taskValidator.ValidateTaskFields(title, priority); err != nil {
		message := "invalid task"
		if verr, ok := err.(*validation.ValidationError); ok {
			message = verr.GetUserFriendlyMessage()
		}
		return "", errors.NewValidationError(message, err)
	}
	return strings.TrimSpace(title), nil
}

func (s *taskStoreImpl) fail(operation string, id uuid.UUID, err error) error {
	if appErr, ok := errors.AsAppError(err); ok && id != uuid.Nil {
		appErr.WithContext("task_id", id)
	}

	entry := s.log.WithFields(logrus.Fields{"operation": operation, "task_id": id})
	if errors.ShouldLogError(err) {
		entry.WithError(err).Error("task store operation failed")
	} else {
		entry.WithError(err).Debug("task store operation rejected")
	}
	return err
}

// Add appends a new task
func (s *taskStoreImpl) Add(ctx context.Context, title, description string, priority int) (*domain.Task, error) {
	trimmedTitle, err := s.validateFields(title, priority)
	if err != nil {
		return nil, s.fail("add", uuid.Nil, err)
	}

	task := domain.NewTask(trimmedTitle, description, priority)
	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, s.fail("add", task.ID, err)
	}

	s.log.WithFields(logrus.Fields{"task_id": task.ID, "priority": task.Priority}).Debug("task added")
	return &task, nil
}

// Get retrieves a task by its ID
func (s *taskStoreImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	dbTask, err := s.repo.GetTask(ctx, id.String())
	if err != nil {
		return nil, err
	}

	task := s.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// List returns all tasks in insertion order
func (s *taskStoreImpl) List(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, s.fail("list", uuid.Nil, err)
	}
	return s.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// Update overwrites a task's editable fields
func (s *taskStoreImpl) Update(ctx context.Context, id uuid.UUID, title, description string, priority int) (*domain.Task, error) {
	trimmedTitle, err := s.validateFields(title, priority)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	dbTask := &sqlite.Task{
		ID:          id.String(),
		Title:       trimmedTitle,
		Description: description,
		Priority:    priority,
	}
	if err := s.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, s.fail("update", id, err)
	}

	s.log.WithField("task_id", id).Debug("task updated")
	return s.Get(ctx, id)
}

// MarkComplete flags a task as completed
func (s *taskStoreImpl) MarkComplete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if err := s.repo.SetCompleted(ctx, id.String(), true); err != nil {
		return nil, s.fail("mark_complete", id, err)
	}

	s.log.WithField("task_id", id).Debug("task marked complete")
	return s.Get(ctx, id)
}

// Remove deletes a task
func (s *taskStoreImpl) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTask(ctx, id.String()); err != nil {
		return s.fail("remove", id, err)
	}

	s.log.WithField("task_id", id).Debug("task removed")
	return nil
}
