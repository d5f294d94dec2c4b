package commands

import (
	"context"
)

// AssignCategoriesCommandHandler replaces product category sets. The
// replacement runs through the aggregate so the at-least-one-category
// invariant is checked before any row changes.
type AssignCategoriesCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAssignCategoriesCommandHandler creates a handler for category assignment.
func NewAssignCategoriesCommandHandler(uowFactory ProductUoWFactory) AssignCategoriesCommandHandler {
	return AssignCategoriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement.
func (h AssignCategoriesCommandHandler) Handle(ctx context.Context, cmd AssignCategoriesCommand) error {
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

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceCategories(cmd.CategoryIDs()); err != nil {
		return err
	}

	if err = productRepo.ReplaceCategories(ctx, cmd.ProductID(), aggregate.CategoryIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
