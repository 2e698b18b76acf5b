package commands

import (
	"context"
)

// MarkPickedUpCommandHandler records the pickup on both the delivery and its
// parcel in one transaction, keeping their lifecycles in step.
type MarkPickedUpCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for pickup reporting.
func NewMarkPickedUpCommandHandler(uowFactory UoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
// Returns an ObjectNotFoundError for an unknown delivery and an
// InvalidStateError when the delivery is not in Assigned status.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	p, err := parcelRepo.Get(ctx, d.ParcelID())
	if err != nil {
		return err
	}

	if err = d.MarkPickedUp(); err != nil {
		return err
	}
	if err = p.MarkPickedUp(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
