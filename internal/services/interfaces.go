package services

import (
	"context"

	"github.com/google/uuid"

	"todo/internal/domain"
)

// TaskStore owns the ordered task collection and is its only mutation point.
// Every failing call leaves the collection unchanged.
type TaskStore interface {
	// Add appends a new incomplete task after all existing ones.
	Add(ctx context.Context, title, description string, priority int) (*domain.Task, error)

	// Get returns the task with id, or a not-found error.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns a snapshot of all tasks in insertion order.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update overwrites title, description and priority. Completion is untouched.
	Update(ctx context.Context, id uuid.UUID, title, description string, priority int) (*domain.Task, error)

	// MarkComplete sets the completion flag. Calling it again is a no-op.
	MarkComplete(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Remove deletes the task with id, or returns a not-found error.
	Remove(ctx context.Context, id uuid.UUID) error
}
