package validation

import (
	"todo/internal/domain"
)

var taskRanges = map[string][2]int{
	"priority": {domain.MinPriority, domain.MaxPriority},
}

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTask validates a domain.Task's title and priority
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	if verr := tv.validator.Struct(task, taskRanges); verr != nil && verr.HasErrors() {
		return verr
	}
	return nil
}

// ValidateTaskFields validates the user-editable fields of a task
func (tv *TaskValidator) ValidateTaskFields(title string, priority int) error {
	return tv.ValidateTask(domain.Task{Title: title, Priority: priority})
}
