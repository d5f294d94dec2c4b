package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// DeletePickupCommandHandler removes pickup records.
type DeletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewDeletePickupCommandHandler creates a handler for pickup deletion.
func NewDeletePickupCommandHandler(uowFactory PickupUoWFactory) DeletePickupCommandHandler {
	return DeletePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. A pickup past pending refuses deletion with
// a ConflictError unless the staff override was set.
func (h DeletePickupCommandHandler) Handle(ctx context.Context, cmd DeletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRepository()

	aggregate, err := pickupRepo.Get(ctx, cmd.PickupID())
	if err != nil {
		return err
	}

	if !aggregate.CanBeDeleted() && !cmd.StaffOverride() {
		return errs.NewConflictError(
			fmt.Sprintf("pickup %s is %s and cannot be deleted without staff override",
				aggregate.ID(), aggregate.Status()))
	}

	if err = pickupRepo.Delete(ctx, cmd.PickupID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
