package commands

import (
	"context"
)

// MarkFailedCommandHandler abandons a delivery.
// The delivery record is kept in Failed status as audit history with the
// reported reason, the parcel returns to Pending with its driver binding
// cleared, and the driver is released for new assignments. All three changes
// commit together.
type MarkFailedCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkFailedCommandHandler creates a handler for delivery failure reporting.
func NewMarkFailedCommandHandler(uowFactory UoWFactory) MarkFailedCommandHandler {
	return MarkFailedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command.
// Returns an ObjectNotFoundError for an unknown delivery and an
// InvalidStateError when the delivery is already in a terminal status.
func (h MarkFailedCommandHandler) Handle(ctx context.Context, cmd MarkFailedCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	parcelRepo := uow.ParcelRepository()
	driverRepo := uow.DriverRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.Fail(cmd.Reason()); err != nil {
		return err
	}

	p, err := parcelRepo.Get(ctx, d.ParcelID())
	if err != nil {
		return err
	}
	if err = p.ResetToPending(); err != nil {
		return err
	}

	drv, err := driverRepo.Get(ctx, d.DriverID())
	if err != nil {
		return err
	}
	if err = drv.Release(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
