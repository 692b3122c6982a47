package calculator

import "fmt"

// Status is the lifecycle state of a consolidated transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusConfirmed Status = "confirmed"
)

// ParseStatus converts a stored or wire value into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusConfirmed:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Transition validates an explicit status change requested by a member.
// Reverting to pending is never explicit: it happens when consolidation
// finds an unsettled contributing expense.
func Transition(from, to Status) error {
	if from == to {
		return nil
	}
	switch {
	case from == StatusPending && to == StatusCompleted,
		from == StatusPending && to == StatusConfirmed,
		from == StatusCompleted && to == StatusConfirmed:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
