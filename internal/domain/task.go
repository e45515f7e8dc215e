package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Priority bounds for a task.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MinPriority
)

// Checkmark prefixes the label of a completed task.
const Checkmark = "✓ "

// Status labels shown in the detail pane.
const (
	StatusCompleted  = "Completed"
	StatusIncomplete = "Incomplete"
)

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          uuid.UUID
	Title       string `validate:"notblank"`
	Description string
	Priority    int `validate:"min=1,max=5"`
	Completed   bool
}

// NewTask creates an incomplete Task with a fresh identifier.
func NewTask(title, description string, priority int) Task {
	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Priority:    priority,
	}
}

// ClampPriority forces p into [MinPriority, MaxPriority].
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

// Status returns the completion label.
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusIncomplete
}

// Label renders the list row, prefixed with mark when completed.
func (t Task) Label(mark string) string {
	prefix := ""
	if t.Completed {
		prefix = mark
	}
	return fmt.Sprintf("%s%s (Priority: %d)", prefix, t.Title, t.Priority)
}

// String returns the list row using the default checkmark.
func (t Task) String() string {
	return t.Label(Checkmark)
}

// Details renders the full field dump for the detail pane.
func (t Task) Details() string {
	return fmt.Sprintf("Title: %s\n\nDescription: %s\n\nPriority: %d\n\nStatus: %s",
		t.Title, t.Description, t.Priority, t.Status())
}
