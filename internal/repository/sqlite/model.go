package sqlite

import "time"

// Task is a row of the tasks table.
type Task struct {
	ID        int64
	Title     string
	Detail    string
	CreatedAt time.Time
	DueDate   *time.Time // Using pointer to allow NULL values
	Priority  int
	Tags      string
	Done      bool
}

// NewTask holds the caller-supplied fields of a task to insert.
// ID, CreatedAt and Done are assigned by the repository.
type NewTask struct {
	Title    string
	Detail   string
	DueDate  *time.Time
	Priority int // 0 selects DefaultPriority
	Tags     string
}

const (
	// DefaultPriority is stored when an insert does not specify one.
	DefaultPriority = 2

	minPriority = 1
	maxPriority = 3
)
