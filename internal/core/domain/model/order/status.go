package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending -> processing -> ready -> completed   (terminal)
//	pending -> canceled                            (terminal)
//	processing -> canceled                         (terminal)
//
// Re-applying the current status is not a transition; the aggregate treats it
// as a success with no side effects.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// Line items may still be deleted with the order while pending.
	Pending

	// Processing indicates staff accepted the order and fulfillment started.
	Processing

	// Ready indicates the order is prepared and awaiting handoff.
	Ready

	// Completed indicates the order was handed over. Terminal.
	Completed

	// Canceled indicates the order was withdrawn before fulfillment. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Ready:      "ready",
		Completed:  "completed",
		Canceled:   "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Ready:      "ready",
		Completed:  "completed",
		Canceled:   "canceled",
	}
}

// transitions is the allowed-successor table of the order state machine.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Canceled},
		Processing: {Ready, Canceled},
		Ready:      {Completed},
		Completed:  {},
		Canceled:   {},
	}
}

// StatusFromString parses a status from its wire representation.
// Returns a ValidationError for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// CanTransitionTo reports whether the machine allows moving to next.
// Re-applying the current status is not a transition and returns false here;
// the aggregate handles that case as an idempotent no-op.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition, returning the new status.
// Returns an InvalidTransitionError when the machine forbids the move.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
