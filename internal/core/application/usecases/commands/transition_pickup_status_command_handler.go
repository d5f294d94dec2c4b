package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/ports"
)

// TransitionPickupStatusCommandHandler moves pickups through their
// operational states. Landing on completed records the assigned driver's
// completion, with the optional rating, in the same transaction; completing a
// pickup and crediting its driver never diverge.
type TransitionPickupStatusCommandHandler struct {
	uowFactory PickupDriverUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewTransitionPickupStatusCommandHandler creates a handler for pickup status
// transitions.
func NewTransitionPickupStatusCommandHandler(
	uowFactory PickupDriverUoWFactory,
	dispatcher ports.NotificationDispatcher,
) TransitionPickupStatusCommandHandler {
	return TransitionPickupStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the transition. Completion of an unassigned pickup is
// legal and simply credits nobody. The assigned driver, when present, is
// notified after commit.
func (h TransitionPickupStatusCommandHandler) Handle(ctx context.Context, cmd TransitionPickupStatusCommand) error {
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

	completed, err := aggregate.TransitionTo(cmd.NewStatus())
	if err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if completed && aggregate.AssignedTo() != nil {
		driverRepo := uow.DriverRepository()

		assignee, driverErr := driverRepo.GetForUpdate(ctx, *aggregate.AssignedTo())
		if driverErr != nil {
			return driverErr
		}

		if driverErr = assignee.RecordCompletion(cmd.Rating()); driverErr != nil {
			return driverErr
		}

		if driverErr = driverRepo.Update(ctx, assignee); driverErr != nil {
			return driverErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assignedTo := aggregate.AssignedTo(); assignedTo != nil {
		_ = h.dispatcher.Dispatch(ctx, ports.Notification{
			UserID:      *assignedTo,
			Message:     fmt.Sprintf("Pickup is now %s", aggregate.Status()),
			Type:        ports.NotificationPickupUpdate,
			ReferenceID: aggregate.ID().String(),
		})
	}

	return nil
}
