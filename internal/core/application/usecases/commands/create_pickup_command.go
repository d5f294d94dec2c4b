package commands

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreatePickupCommandIsNotConstructed = errors.New(
		"CreatePickupCommand must be created via NewCreatePickupCommand constructor",
	)
	ErrPickupLocationIsRequired = errors.New("pickup location is required")
)

// CreatePickupCommand schedules the physical handoff for an order, or a
// standalone handoff slot when no order is referenced yet.
type CreatePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID   kernel.UUID
	orderID    *kernel.UUID
	location   string
	notes      string
	pickupDate time.Time

	guard guard.ConstructorGuard
}

// NewCreatePickupCommand creates a pickup creation command. The order
// reference is optional; the location is not. A zero pickupDate means the
// handoff time is not agreed yet.
func NewCreatePickupCommand(
	pickupID kernel.UUID,
	orderID *kernel.UUID,
	location, notes string,
	pickupDate time.Time,
) (CreatePickupCommand, error) {
	cmd := CreatePickupCommand{
		notes:      notes,
		pickupDate: pickupDate,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setOrderID(orderID),
		cmd.setLocation(location),
	); err != nil {
		return CreatePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
}

// PickupID returns the client-generated pickup identifier.
func (c CreatePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OrderID returns the referenced order, or nil for a standalone pickup.
func (c CreatePickupCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Location returns the handoff location.
func (c CreatePickupCommand) Location() string {
	return c.location
}

// Notes returns the free-text staff notes.
func (c CreatePickupCommand) Notes() string {
	return c.notes
}

// PickupDate returns the agreed handoff time; zero when unscheduled.
func (c CreatePickupCommand) PickupDate() time.Time {
	return c.pickupDate
}

func (c *CreatePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *CreatePickupCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePickupCommand) setLocation(location string) error {
	if location == "" {
		return ErrPickupLocationIsRequired
	}

	c.location = location
	return nil
}
