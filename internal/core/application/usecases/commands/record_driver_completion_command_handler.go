package commands

import (
	"context"
)

// RecordDriverCompletionCommandHandler credits drivers with completed
// pickups. The row is locked for the read-modify-write so concurrent credits
// never lose an increment or misweight the average.
type RecordDriverCompletionCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRecordDriverCompletionCommandHandler creates a handler for completion
// records.
func NewRecordDriverCompletionCommandHandler(uowFactory DriverUoWFactory) RecordDriverCompletionCommandHandler {
	return RecordDriverCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion record.
func (h RecordDriverCompletionCommandHandler) Handle(ctx context.Context, cmd RecordDriverCompletionCommand) error {
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

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.GetForUpdate(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordCompletion(cmd.Rating()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
