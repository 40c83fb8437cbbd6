package domain

import "time"

// TaskRepository manages task persistence.
// Every implementation must keep the persisted snapshot valid after each
// successful operation; a failed operation must leave it untouched.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter, in insertion order.
	List(filter TaskFilter) ([]*Task, error)

	// Create assigns the next ID to the task and appends it to the store.
	Create(task *Task) error

	// Update replaces the stored task with the same ID.
	// Returns ErrTaskNotFound if the ID does not exist.
	Update(task *Task) error

	// Delete removes a task by ID. The ID counter is never reused.
	// Returns ErrTaskNotFound if the ID does not exist.
	Delete(id int) error
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Status   *Status   // nil = all statuses
	Priority *Priority // nil = all priorities
}

// Matches returns true if the task satisfies the filter.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, with defaults applied for
	// anything the config file does not set.
	Load() (*Config, error)
}

// Logger records task events.
type Logger interface {
	// Info logs an informational event for a task.
	Info(taskID int, event, msg string)

	// Error logs an error event.
	Error(event, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
