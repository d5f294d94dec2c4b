package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for business-rule violations: the requested
// operation is not permitted in the entity's current state.
var ErrConflict = errors.New("conflict")

// ConflictError reports an operation rejected by a business rule,
// such as deleting an order that already left the pending state.
type ConflictError struct {
	Detail string
	Cause  error
}

// NewConflictError creates a ConflictError with a human-readable detail.
func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError carrying the underlying cause.
func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, sanitize(e.Detail), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
