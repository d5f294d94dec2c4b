package commands

import (
	"context"
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

// CreatePickupCommandHandler creates pickup records. An order gets at most
// one pickup: the handler checks for an existing record inside the
// transaction, and the unique order index catches the race two concurrent
// creations would otherwise win together.
type CreatePickupCommandHandler struct {
	uowFactory OrderPickupUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewCreatePickupCommandHandler creates a handler for pickup creation.
func NewCreatePickupCommandHandler(
	uowFactory OrderPickupUoWFactory,
	dispatcher ports.NotificationDispatcher,
) CreatePickupCommandHandler {
	return CreatePickupCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes pickup creation. When an order is referenced it must
// exist, and a second pickup for it fails with a ConflictError. The order's
// consumer is notified once the record is committed.
func (h CreatePickupCommandHandler) Handle(ctx context.Context, cmd CreatePickupCommand) error {
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

	var notification *ports.Notification
	if orderID := cmd.OrderID(); orderID != nil {
		linkedOrder, err := uow.OrderRepository().Get(ctx, *orderID)
		if err != nil {
			return err
		}

		_, err = pickupRepo.GetByOrderID(ctx, *orderID)
		if err == nil {
			return errs.NewConflictError(
				fmt.Sprintf("order %s already has a pickup", orderID))
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		notification = &ports.Notification{
			UserID:      linkedOrder.ConsumerID(),
			Message:     fmt.Sprintf("Pickup scheduled at %s", cmd.Location()),
			Type:        ports.NotificationPickupUpdate,
			ReferenceID: cmd.PickupID().String(),
		}
	}

	newPickup, err := pickup.NewPickup(
		cmd.PickupID(), cmd.OrderID(), cmd.Location(), cmd.Notes(), cmd.PickupDate())
	if err != nil {
		return err
	}

	if err = pickupRepo.Add(ctx, newPickup); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notification != nil {
		_ = h.dispatcher.Dispatch(ctx, *notification)
	}

	return nil
}
