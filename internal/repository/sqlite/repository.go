package sqlite

import (
	"context"
	"database/sql"

	"todo/internal/errors"
	"todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database that lives as long as its connection.
const MemoryDSN = ":memory:"

const taskColumns = `id, title, description, priority, completed`

// Repository defines the interface for task storage operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *Task) error
	SetCompleted(ctx context.Context, id string, completed bool) error

	// Delete operations
	DeleteTask(ctx context.Context, id string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// NewInMemory creates a repository whose contents vanish when it is closed
func NewInMemory() (*SQLiteRepository, error) {
	return New(MemoryDSN)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask appends a task after every existing one
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (id, title, description, priority, completed)
	VALUES (?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, "insert task", query, task.ID, task.Title, task.Description, task.Priority, task.Completed)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask overwrites title, description and priority. The completion flag is left alone.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, priority = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", task.ID, task.Title, task.Description, task.Priority, task.ID)
}

// SetCompleted sets the completion flag of a task
func (r *SQLiteRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := `UPDATE tasks SET completed = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, completed, id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}
