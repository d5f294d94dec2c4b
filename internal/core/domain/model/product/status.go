package product

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents a product's listing state. Listings start pending until
// staff review them; transitions are farmer/staff-initiated and carry no
// machine beyond value validation, independent of any order's lifecycle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined value.
	StatusUnknown Status = iota

	// StatusPending is the initial state awaiting staff review.
	StatusPending

	// StatusApproved means the listing is live and purchasable.
	StatusApproved

	// StatusRejected means staff declined the listing.
	StatusRejected

	// StatusDelisted means the farmer or staff withdrew the listing.
	StatusDelisted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
		StatusDelisted: "delisted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
		StatusDelisted: "delisted",
	}
}

// StatusFromString parses a listing status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValidationErrorWithCause(
		"status", fmt.Errorf("%q is not a valid product status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status", fmt.Errorf("%d is not a valid product status", s))
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
