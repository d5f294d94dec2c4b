package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes pending orders. A pending order still
// holds the stock decremented at checkout, so deletion returns that stock
// before dropping the rows, all in one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderProductUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. Orders past pending are audit records and
// refuse deletion with a ConflictError.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if !aggregate.CanBeDeleted() {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is %s and cannot be deleted", aggregate.ID(), aggregate.Status()))
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		productID := item.ProductID()
		if productID == nil {
			continue
		}
		if err = productRepo.RestoreStock(ctx, *productID, item.Quantity()); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
