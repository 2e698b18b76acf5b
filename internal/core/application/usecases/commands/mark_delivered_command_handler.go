package commands

import (
	"context"
	"time"

	"logistima/internal/core/ports"
)

// MarkDeliveredCommandHandler completes a delivery.
// In one transaction the delivery is completed, the parcel marked delivered,
// and the driver released back to Available. A receipt generation job is
// enqueued after commit.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	jobQueue   ports.JobQueue
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for cross-aggregate transactions and the job queue for
// receipt generation.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory, jobQueue ports.JobQueue) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		jobQueue:   jobQueue,
	}
}

// Handle processes the completion command.
// Returns an ObjectNotFoundError for an unknown delivery and
// delivery.ErrAlreadyDelivered when the delivery was completed earlier; the
// first completion timestamp is preserved in that case.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = d.Complete(time.Now().UTC()); err != nil {
		return err
	}

	p, err := parcelRepo.Get(ctx, d.ParcelID())
	if err != nil {
		return err
	}
	if err = p.MarkDelivered(); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	payload := ReceiptGenerationPayload{DeliveryID: d.ID().String()}
	if _, err = h.jobQueue.Enqueue(ctx, ports.ReceiptGenerationQueue, GenerateReceiptJobName, payload); err != nil {
		return err
	}

	return nil
}
