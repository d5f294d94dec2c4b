package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/pkg/guard"
)

var ErrTransitionPickupStatusCommandIsNotConstructed = errors.New(
	"TransitionPickupStatusCommand must be created via NewTransitionPickupStatusCommand constructor",
)

// TransitionPickupStatusCommand moves a pickup through the operational
// allow-list. An optional rating accompanies the completed status and is
// folded into the driver's running average.
type TransitionPickupStatusCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	newStatus pickup.Status
	rating    *float64

	guard guard.ConstructorGuard
}

// NewTransitionPickupStatusCommand creates a pickup status transition command.
// The assigned status is not reachable here; assignment goes through
// AssignDriverCommand so the driver link is never skipped.
func NewTransitionPickupStatusCommand(
	pickupID kernel.UUID,
	newStatus pickup.Status,
	rating *float64,
) (TransitionPickupStatusCommand, error) {
	cmd := TransitionPickupStatusCommand{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionPickupStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionPickupStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPickupStatusCommandIsNotConstructed)
}

// PickupID returns the pickup to transition.
func (c TransitionPickupStatusCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// NewStatus returns the requested target status.
func (c TransitionPickupStatusCommand) NewStatus() pickup.Status {
	return c.newStatus
}

// Rating returns the optional completion rating, nil when none was given.
func (c TransitionPickupStatusCommand) Rating() *float64 {
	return c.rating
}

func (c *TransitionPickupStatusCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *TransitionPickupStatusCommand) setNewStatus(newStatus pickup.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
