package errs

import (
	"errors"
	"fmt"
)

// ErrTransient is the sentinel for store failures that are safe to retry:
// lost connections, timeouts, serialization aborts.
var ErrTransient = errors.New("transient store failure")

// TransientError reports an operation that failed because the underlying
// store was unavailable. The triggering transaction has been rolled back.
type TransientError struct {
	Op    string
	Cause error
}

// NewTransientError creates a TransientError for the named operation.
func NewTransientError(op string, cause error) *TransientError {
	return &TransientError{Op: op, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransient, sanitize(e.Op), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrTransient, sanitize(e.Op))
}

func (e *TransientError) Unwrap() error {
	return ErrTransient
}
