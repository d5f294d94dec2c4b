package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrVehicleTypeIsRequired = errors.New("vehicle type is required")
)

// RegisterDriverCommand enrolls an existing user account as a delivery
// driver. New drivers start offline.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UserID
	vehicleType     string
	maxLoadCapacity int

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a driver registration command.
func NewRegisterDriverCommand(
	userID kernel.UserID,
	vehicleType string,
	maxLoadCapacity int,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setVehicleType(vehicleType),
		cmd.setMaxLoadCapacity(maxLoadCapacity),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// UserID returns the account being enrolled.
func (c RegisterDriverCommand) UserID() kernel.UserID {
	return c.userID
}

// VehicleType returns the declared vehicle type.
func (c RegisterDriverCommand) VehicleType() string {
	return c.vehicleType
}

// MaxLoadCapacity returns the declared vehicle load capacity.
func (c RegisterDriverCommand) MaxLoadCapacity() int {
	return c.maxLoadCapacity
}

func (c *RegisterDriverCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *RegisterDriverCommand) setMaxLoadCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValidationErrorWithCause(
			"max load capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}

	c.maxLoadCapacity = capacity
	return nil
}
