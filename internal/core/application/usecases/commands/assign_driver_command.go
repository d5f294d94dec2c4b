package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand attaches an available driver to a pickup.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(pickupID, driverID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // driver was claimed by another pickup in the meantime
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	pickupID kernel.UUID
	driverID kernel.UserID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a driver assignment command.
func NewAssignDriverCommand(pickupID kernel.UUID, driverID kernel.UserID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// PickupID returns the pickup being assigned.
func (c AssignDriverCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UserID {
	return c.driverID
}

func (c *AssignDriverCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UserID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
