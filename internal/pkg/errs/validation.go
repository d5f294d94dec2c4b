package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel for caller-fault input errors.
// Operations failing with this error must not be retried unchanged.
var ErrValidation = errors.New("validation failed")

// ValidationError reports malformed or missing input supplied by the caller.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates a ValidationError for the named parameter.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError carrying the underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// sanitize flattens newlines so error text stays single-line in logs.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
