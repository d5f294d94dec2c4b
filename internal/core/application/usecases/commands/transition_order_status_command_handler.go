package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
)

// TransitionOrderStatusCommandHandler moves orders through their lifecycle.
// Cancelling an order that still holds decremented stock returns that stock
// to the catalog in the same transaction as the status write.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderProductUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewTransitionOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderProductUoWFactory,
	dispatcher ports.NotificationDispatcher,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the transition. Re-applying the current status is a
// success with no persistence write and no notification. Forbidden moves
// surface as InvalidTransitionError.
func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	heldStock := aggregate.HoldsDecrementedStock()

	changed, err := aggregate.TransitionTo(cmd.NewStatus())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if cmd.NewStatus() == order.Canceled && heldStock {
		if err = h.restoreStock(ctx, uow.ProductRepository(), aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.dispatcher.Dispatch(ctx, ports.Notification{
		UserID:      aggregate.ConsumerID(),
		Message:     fmt.Sprintf("Order is now %s", aggregate.Status()),
		Type:        ports.NotificationOrderUpdate,
		ReferenceID: aggregate.ID().String(),
	})

	return nil
}

// restoreStock returns decremented stock for every line item whose product
// still exists. Nullified references mean the product is gone; there is
// nothing to restore for those.
func (h TransitionOrderStatusCommandHandler) restoreStock(
	ctx context.Context,
	productRepo ports.ProductRepository,
	aggregate *order.Order,
) error {
	for _, item := range aggregate.Items() {
		productID := item.ProductID()
		if productID == nil {
			continue
		}
		if err := productRepo.RestoreStock(ctx, *productID, item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
