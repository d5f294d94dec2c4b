// Package errs provides the standardized error taxonomy for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy separates caller faults from state conflicts and store failures:
//   - ValidationError: malformed or missing input, the caller's fault, never retried
//   - ConflictError: a business rule rejected the operation in its current state
//   - InsufficientStockError: a stock decrement would go negative (a ConflictError)
//   - InvalidTransitionError: a status change the state machine does not allow
//   - TransientError: the underlying store failed, safe for the caller to retry
//   - ObjectNotFoundError: the referenced entity does not exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// InsufficientStockError unwraps through ErrInsufficientStock to ErrConflict,
// so callers matching on ErrConflict catch stock failures as well.
package errs
