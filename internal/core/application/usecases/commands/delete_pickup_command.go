package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrDeletePickupCommandIsNotConstructed = errors.New(
	"DeletePickupCommand must be created via NewDeletePickupCommand constructor",
)

// DeletePickupCommand removes a pickup record. Pending pickups delete freely;
// anything further along needs the staff override flag.
type DeletePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID      kernel.UUID
	staffOverride bool

	guard guard.ConstructorGuard
}

// NewDeletePickupCommand creates a pickup deletion command.
func NewDeletePickupCommand(pickupID kernel.UUID, staffOverride bool) (DeletePickupCommand, error) {
	cmd := DeletePickupCommand{
		staffOverride: staffOverride,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setPickupID(pickupID); err != nil {
		return DeletePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePickupCommand) Validate() error {
	return c.guard.Validate(ErrDeletePickupCommandIsNotConstructed)
}

// PickupID returns the pickup to delete.
func (c DeletePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// StaffOverride reports whether deletion past pending was authorized.
func (c DeletePickupCommand) StaffOverride() bool {
	return c.staffOverride
}

func (c *DeletePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}
