package controller

import "todo/internal/domain"

// Form carries the editable fields of the add and edit dialogs.
type Form struct {
	Title       string
	Description string
	Priority    int
}

// IncPriority raises the priority by one, stopping at the maximum.
func (f *Form) IncPriority() {
	f.Priority = domain.ClampPriority(f.Priority + 1)
}

// DecPriority lowers the priority by one, stopping at the minimum.
func (f *Form) DecPriority() {
	f.Priority = domain.ClampPriority(f.Priority - 1)
}

func formFromTask(t *domain.Task) Form {
	return Form{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
	}
}
