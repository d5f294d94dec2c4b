package commands

import (
	"context"

	"farmmarket/internal/core/domain/model/product"
)

// CreateProductCommandHandler lists products in the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product listing.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing. The new product lands in pending review
// status regardless of input.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.FarmerID(),
		cmd.Price(),
		cmd.Stock(),
		cmd.UnitType(),
		cmd.ImageRef(),
		cmd.CategoryIDs(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
