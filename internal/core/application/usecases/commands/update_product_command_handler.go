package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/ports"
)

// UpdateProductCommandHandler applies allow-listed field changes to a
// listing. Price changes never touch existing orders; line items keep the
// snapshot taken at checkout.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	dispatcher ports.NotificationDispatcher,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the update. A status change notifies the farmer after
// commit; other field changes are silent.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	statusChanged := false

	if price := cmd.Price(); price != nil {
		if err = aggregate.SetPrice(*price); err != nil {
			return err
		}
	}
	if stock := cmd.Stock(); stock != nil {
		if err = aggregate.SetStock(*stock); err != nil {
			return err
		}
	}
	if status := cmd.Status(); status != nil {
		statusChanged = aggregate.Status() != *status
		if err = aggregate.SetStatus(*status); err != nil {
			return err
		}
	}
	if unitType := cmd.UnitType(); unitType != nil {
		if err = aggregate.SetUnitType(*unitType); err != nil {
			return err
		}
	}
	if imageRef := cmd.ImageRef(); imageRef != nil {
		aggregate.SetImageRef(*imageRef)
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if statusChanged {
		_ = h.dispatcher.Dispatch(ctx, ports.Notification{
			UserID:      aggregate.FarmerID(),
			Message:     fmt.Sprintf("Listing is now %s", aggregate.Status()),
			Type:        ports.NotificationProductUpdate,
			ReferenceID: aggregate.ID().String(),
		})
	}

	return nil
}
