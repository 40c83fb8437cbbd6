package domain

// Status represents the completion state of a task.
type Status string

const (
	StatusPending Status = "pending" // Created, not yet completed
	StatusDone    Status = "done"    // Completed
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusDone}
}

// ParseStatus converts a string into a Status.
// Returns ErrInvalidStatus for unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusDone:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}
