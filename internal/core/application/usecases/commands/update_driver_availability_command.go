package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrUpdateDriverAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateDriverAvailabilityCommand must be created via NewUpdateDriverAvailabilityCommand constructor",
)

// UpdateDriverAvailabilityCommand changes a driver's dispatch eligibility and
// optionally records a fresh location report.
type UpdateDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UserID
	availability driver.Availability
	location     string

	guard guard.ConstructorGuard
}

// NewUpdateDriverAvailabilityCommand creates an availability update command.
// An empty location leaves the stored location untouched.
func NewUpdateDriverAvailabilityCommand(
	userID kernel.UserID,
	availability driver.Availability,
	location string,
) (UpdateDriverAvailabilityCommand, error) {
	cmd := UpdateDriverAvailabilityCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAvailability(availability),
	); err != nil {
		return UpdateDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverAvailabilityCommandIsNotConstructed)
}

// UserID returns the driver's user identity.
func (c UpdateDriverAvailabilityCommand) UserID() kernel.UserID {
	return c.userID
}

// Availability returns the requested availability.
func (c UpdateDriverAvailabilityCommand) Availability() driver.Availability {
	return c.availability
}

// Location returns the optional location report; empty means no report.
func (c UpdateDriverAvailabilityCommand) Location() string {
	return c.location
}

func (c *UpdateDriverAvailabilityCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateDriverAvailabilityCommand) setAvailability(availability driver.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
