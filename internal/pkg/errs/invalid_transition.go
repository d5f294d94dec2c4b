package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for status changes the state machine
// does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports a rejected status transition,
// naming the entity and both endpoints of the attempted change.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the entity.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, sanitize(e.Entity), sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
