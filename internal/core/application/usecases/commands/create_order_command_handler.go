package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the checkout flow. For every requested
// item it snapshots the current catalog price and decrements stock with a
// guarded update, then persists the pending order. The whole flow runs in one
// transaction: a stock shortage on the last item releases everything taken
// for the earlier ones.
type CreateOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	dispatcher ports.NotificationDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the checkout command. Only approved listings are
// purchasable; requesting more than the remaining stock fails the whole
// checkout with an InsufficientStockError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()
	items := make([]order.LineItem, 0, len(cmd.Items()))

	for _, requested := range cmd.Items() {
		listing, err := productRepo.Get(ctx, requested.ProductID)
		if err != nil {
			return err
		}

		if listing.Status() != product.StatusApproved {
			return errs.NewConflictError(
				fmt.Sprintf("product %s is not purchasable", requested.ProductID))
		}

		if err = productRepo.DecrementStock(ctx, requested.ProductID, requested.Quantity); err != nil {
			return err
		}

		item, err := order.NewLineItem(requested.ProductID, requested.Quantity, listing.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ConsumerID(), cmd.PickupDetails(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.dispatcher.Dispatch(ctx, ports.Notification{
		UserID:      newOrder.ConsumerID(),
		Message:     fmt.Sprintf("Order placed, total %.2f", newOrder.Total()),
		Type:        ports.NotificationOrderUpdate,
		ReferenceID: newOrder.ID().String(),
	})

	return nil
}
