// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single tracked task.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created   time.Time  `json:"created"`             // Creation time, immutable
	Completed *time.Time `json:"completed,omitempty"` // Set when status becomes done
	Title     string     `json:"title"`               // Title (required, non-empty)
	Priority  Priority   `json:"priority"`            // Priority level
	Status    Status     `json:"status"`              // Current status
	ID        int        `json:"id"`                  // Task ID (assigned by the store)
}

// IsDone returns true if the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// Validate checks the task's internal consistency.
// The store uses this when loading a snapshot to reject corrupt data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	// Status done iff completed timestamp is present.
	if (t.Status == StatusDone) != (t.Completed != nil) {
		return ErrInvalidStatus
	}
	return nil
}
