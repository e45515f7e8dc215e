package sqlite

// Task is the row stored in the tasks table.
// Row order is the insertion sequence, which is not exposed.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    int
	Completed   bool
}
