package domain

import (
	"github.com/google/uuid"

	"todo/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID.String(),
		Title:       domainTask.Title,
		Description: domainTask.Description,
		Priority:    domainTask.Priority,
		Completed:   domainTask.Completed,
	}
}

// FromDatabase converts a database Task to a domain Task.
// A malformed identifier maps to uuid.Nil.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	id, err := uuid.Parse(dbTask.ID)
	if err != nil {
		id = uuid.Nil
	}
	return Task{
		ID:          id,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Priority:    dbTask.Priority,
		Completed:   dbTask.Completed,
	}
}

// FromDatabaseSlice converts database Tasks to domain Task pointers, keeping order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task := m.FromDatabase(*dbTask)
		domainTasks = append(domainTasks, &task)
	}
	return domainTasks
}

// Mapper provides access to all mappers.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
