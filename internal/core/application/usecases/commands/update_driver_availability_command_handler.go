package commands

import (
	"context"
)

// UpdateDriverAvailabilityCommandHandler changes driver dispatch eligibility.
// No business rule couples availability to open pickups: going offline with
// assignments in flight is allowed, matching the registry's intentional gap.
type UpdateDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverAvailabilityCommandHandler creates a handler for
// availability updates.
func NewUpdateDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) UpdateDriverAvailabilityCommandHandler {
	return UpdateDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update.
func (h UpdateDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateDriverAvailabilityCommand) error {
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

	if err = aggregate.SetAvailability(cmd.Availability()); err != nil {
		return err
	}

	if location := cmd.Location(); location != "" {
		aggregate.ReportLocation(location)
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
