package driver

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Availability represents a driver's current dispatch eligibility.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined value.
	AvailabilityUnknown Availability = iota

	// Available means the driver can be assigned to a pickup.
	Available

	// Busy means the driver is working and should not take new pickups.
	Busy

	// Offline means the driver is not on duty.
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Busy:                "busy",
		Offline:             "offline",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// AvailabilityFromString parses an availability from its wire representation.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, str := range getValidAvailabilityStrings() {
		if str == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValidationErrorWithCause(
		"availability", fmt.Errorf("%q is not a valid availability status", s))
}

// Validate checks that the value is one of available, busy, offline.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValidationErrorWithCause(
			"availability", fmt.Errorf("%d is not a valid availability status", a))
	}
	return nil
}

// String returns the lowercase wire name of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}
