package domain

// Status represents the completion state of an item.
type Status string

const (
	StatusPending   Status = "pending"   // Created, not yet done
	StatusCompleted Status = "completed" // Marked completed
)

// StatusOf maps a completion flag to a Status.
func StatusOf(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
