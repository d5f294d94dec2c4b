package kernel

import (
	"fmt"
	"strconv"

	"farmmarket/internal/pkg/errs"
)

// ErrUserIDIsNotConstructed indicates a UserID that was not created through
// NewUserID. It is returned when validating the zero value.
var ErrUserIDIsNotConstructed = errs.NewValidationError("user ID must be created via NewUserID")

// UserID is the validated integer identity of an external actor: a consumer,
// a farmer, or a driver. The auth collaborator owns these identities; this
// core only requires them to be positive.
//
// The zero value is invalid and fails Validate.
type UserID struct {
	id int64
}

// NewUserID creates a UserID from a raw identifier supplied by the caller.
// Returns a ValidationError when the identifier is not positive.
func NewUserID(id int64) (UserID, error) {
	if id <= 0 {
		return UserID{}, errs.NewValidationErrorWithCause(
			"user ID", fmt.Errorf("%d is not a positive identifier", id))
	}
	return UserID{id: id}, nil
}

// Int64 returns the raw identifier for persistence and external contracts.
func (u UserID) Int64() int64 {
	return u.id
}

// String returns the decimal form of the identifier.
func (u UserID) String() string {
	return strconv.FormatInt(u.id, 10)
}

// IsEqual reports whether two UserIDs identify the same actor.
func (u UserID) IsEqual(other UserID) bool {
	return u.id == other.id
}

// Validate returns ErrUserIDIsNotConstructed for the zero value.
func (u UserID) Validate() error {
	if u.id <= 0 {
		return ErrUserIDIsNotConstructed
	}
	return nil
}
