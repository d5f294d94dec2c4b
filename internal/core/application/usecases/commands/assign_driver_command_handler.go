package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

// AssignDriverCommandHandler attaches drivers to pickups. The driver row is
// read FOR UPDATE so the availability check and the assignment commit as one
// unit; two pickups racing for the same driver serialize on the row lock and
// the loser sees an unavailable driver.
//
// Assignment does not flip the driver's availability. Whether an assigned
// driver should stop being offered is dispatch policy and lives outside the
// registry.
type AssignDriverCommandHandler struct {
	uowFactory PickupDriverUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory PickupDriverUoWFactory,
	dispatcher ports.NotificationDispatcher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment. An unavailable driver fails the command
// with a ConflictError; the driver is notified after a successful commit.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	assignee, err := uow.DriverRepository().GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !assignee.IsAvailable() {
		return errs.NewConflictError(
			fmt.Sprintf("driver %s is %s and cannot take a pickup",
				assignee.UserID(), assignee.Availability()))
	}

	if err = aggregate.AssignDriver(assignee.UserID()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.dispatcher.Dispatch(ctx, ports.Notification{
		UserID:      assignee.UserID(),
		Message:     fmt.Sprintf("New pickup assigned at %s", aggregate.Location()),
		Type:        ports.NotificationPickupUpdate,
		ReferenceID: aggregate.ID().String(),
	})

	return nil
}
