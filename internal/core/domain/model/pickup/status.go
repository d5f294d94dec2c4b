package pickup

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the operational state of a pickup.
//
// Unlike the order machine, pickup transitions are validated against an
// allow-list only: any listed value is reachable from any other, including
// reversions such as completed back to pending. That permissiveness matches
// the operational reality of staff correcting records and is intentional.
// Assigned is the one exception: it is written by driver assignment and is
// not accepted by the transition operation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when a pickup record is created.
	Pending

	// Assigned indicates a driver has been attached to the pickup.
	// Set only through driver assignment, never through TransitionTo.
	Assigned

	// Scheduled indicates a handoff date has been agreed.
	Scheduled

	// InTransit indicates the driver is en route.
	InTransit

	// PickedUp indicates the goods were collected from the farmer.
	PickedUp

	// Completed indicates the handoff finished. Triggers the driver's
	// completion counter.
	Completed

	// Cancelled indicates the pickup was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		PickedUp:  "picked_up",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		PickedUp:  "picked_up",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// transitionAllowList holds the statuses the transition operation accepts.
// Assigned is excluded: assignment owns that write.
func transitionAllowList() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:   {},
		Scheduled: {},
		InTransit: {},
		PickedUp:  {},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause(
		"status", fmt.Errorf("%q is not a valid pickup status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status", fmt.Errorf("%d is not a valid pickup status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo is the single place encoding the transition policy.
// It accepts any allow-listed target from any current status. Tightening the
// policy later means changing only this function.
func (s Status) CanTransitionTo(next Status) bool {
	_, ok := transitionAllowList()[next]
	return ok
}

// TransitionTo validates and performs the transition, returning the new status.
// Unknown targets fail validation; Assigned fails as an invalid transition
// because only driver assignment may write it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("pickup", s.String(), next.String())
	}
	return next, nil
}
