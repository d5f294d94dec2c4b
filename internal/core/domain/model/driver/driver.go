package driver

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrVehicleTypeIsRequired is returned when registering a driver without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValidationError("vehicle type")
)

// Driver represents a registered delivery driver. The aggregate is keyed by
// the external user identity and owns availability, vehicle data, the
// completed-pickup counter, and the running rating average.
type Driver struct {
	userID           kernel.UserID
	availability     Availability
	vehicleType      string
	maxLoadCapacity  int
	currentLocation  string
	completedPickups int
	rating           float64

	isConstructed bool
}

// NewDriver registers a driver for an existing user account.
// New drivers start offline with no completions and no rating.
func NewDriver(userID kernel.UserID, vehicleType string, maxLoadCapacity int) (*Driver, error) {
	d := &Driver{
		availability:  Offline,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setUserID(userID),
		d.setVehicleType(vehicleType),
		d.setMaxLoadCapacity(maxLoadCapacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence. Used by repositories only.
func RestoreDriver(
	userID kernel.UserID,
	availability Availability,
	vehicleType string,
	maxLoadCapacity int,
	currentLocation string,
	completedPickups int,
	rating float64,
) (*Driver, error) {
	d := &Driver{
		currentLocation: currentLocation,
		isConstructed:   true,
	}

	if err := availability.Validate(); err != nil {
		return nil, err
	}
	d.availability = availability

	if completedPickups < 0 {
		return nil, errs.NewValidationErrorWithCause(
			"completed pickups", fmt.Errorf("%d is negative", completedPickups))
	}
	d.completedPickups = completedPickups

	if rating < 0 {
		return nil, errs.NewValidationErrorWithCause(
			"rating", fmt.Errorf("%v is negative", rating))
	}
	d.rating = rating

	if err := errors.Join(
		d.setUserID(userID),
		d.setVehicleType(vehicleType),
		d.setMaxLoadCapacity(maxLoadCapacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// UserID returns the driver's user identity.
func (d *Driver) UserID() kernel.UserID {
	return d.userID
}

// Availability returns the driver's current dispatch eligibility.
func (d *Driver) Availability() Availability {
	return d.availability
}

// IsAvailable reports whether the driver can take a new pickup.
func (d *Driver) IsAvailable() bool {
	return d.availability == Available
}

// VehicleType returns the registered vehicle type.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// MaxLoadCapacity returns the vehicle's load capacity.
func (d *Driver) MaxLoadCapacity() int {
	return d.maxLoadCapacity
}

// CurrentLocation returns the last reported location, free text.
func (d *Driver) CurrentLocation() string {
	return d.currentLocation
}

// CompletedPickups returns the lifetime completed-pickup counter.
func (d *Driver) CompletedPickups() int {
	return d.completedPickups
}

// Rating returns the running average rating; zero until first rated completion.
func (d *Driver) Rating() float64 {
	return d.rating
}

// SetAvailability updates dispatch eligibility. No business rule couples this
// to open pickups: a driver may go available while assignments remain, and
// completing a pickup never flips this automatically. That gap belongs to an
// external dispatch policy.
func (d *Driver) SetAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	d.availability = availability
	return nil
}

// ReportLocation updates the driver's last known location.
func (d *Driver) ReportLocation(location string) {
	d.currentLocation = location
}

// RecordCompletion increments the completed-pickup counter and, when a rating
// is supplied, folds it into the running average as
//
//	(old_rating*old_count + new_rating) / (old_count + 1)
//
// using the pre-increment count. This is an average of averages, not a
// weighted sum of raw ratings; the historical formula is preserved exactly
// for compatibility with stored ratings. The denominator never decreases.
func (d *Driver) RecordCompletion(rating *float64) error {
	if rating != nil {
		if *rating < 0 || *rating > 5 {
			return errs.NewValidationErrorWithCause(
				"rating", fmt.Errorf("%v is not between 0 and 5", *rating))
		}
		oldCount := float64(d.completedPickups)
		d.rating = (d.rating*oldCount + *rating) / (oldCount + 1)
	}

	d.completedPickups++
	return nil
}

func (d *Driver) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	d.userID = userID
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setMaxLoadCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValidationErrorWithCause(
			"max load capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	d.maxLoadCapacity = capacity
	return nil
}
