package commands

import (
	"context"
)

// DeleteProductCommandHandler removes catalog listings. Deletion always
// proceeds, open orders included: their line items lose the product reference
// but keep quantity and price snapshot, so historical totals are unchanged.
// Everything happens in one transaction.
type DeleteProductCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory OrderProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion: nullify line-item references, then drop the
// product with its mappings and feedback references.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if _, err := uow.OrderRepository().NullifyProductReferences(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
