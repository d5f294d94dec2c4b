package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrRecordDriverCompletionCommandIsNotConstructed = errors.New(
	"RecordDriverCompletionCommand must be created via NewRecordDriverCompletionCommand constructor",
)

// RecordDriverCompletionCommand credits a driver with a finished pickup
// outside the pickup transition flow, e.g. for a backfilled record. The
// optional rating folds into the running average.
type RecordDriverCompletionCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UserID
	rating *float64

	guard guard.ConstructorGuard
}

// NewRecordDriverCompletionCommand creates a completion record command.
func NewRecordDriverCompletionCommand(userID kernel.UserID, rating *float64) (RecordDriverCompletionCommand, error) {
	cmd := RecordDriverCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRating(rating),
	); err != nil {
		return RecordDriverCompletionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDriverCompletionCommand) Validate() error {
	return c.guard.Validate(ErrRecordDriverCompletionCommandIsNotConstructed)
}

// UserID returns the driver's user identity.
func (c RecordDriverCompletionCommand) UserID() kernel.UserID {
	return c.userID
}

// Rating returns the optional completion rating, nil when none was given.
func (c RecordDriverCompletionCommand) Rating() *float64 {
	return c.rating
}

func (c *RecordDriverCompletionCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RecordDriverCompletionCommand) setRating(rating *float64) error {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return errs.NewValidationErrorWithCause(
			"rating", fmt.Errorf("%v is not between 0 and 5", *rating))
	}

	c.rating = rating
	return nil
}
