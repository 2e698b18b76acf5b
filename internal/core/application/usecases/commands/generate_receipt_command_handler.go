package commands

import (
	"context"
	"time"

	"logistima/internal/core/domain/services"
)

// GenerateReceiptCommandHandler composes the customer receipt for a completed
// delivery and records the receipt-generated flag on the delivery. The flag
// update is idempotent, so a retried job does not corrupt state; it does
// produce a receipt with a fresh number.
type GenerateReceiptCommandHandler struct {
	uowFactory UoWFactory
	assembler  services.ReceiptAssembler
}

// NewGenerateReceiptCommandHandler creates a handler for receipt generation.
// Requires a UoWFactory because the receipt joins four aggregates.
func NewGenerateReceiptCommandHandler(uowFactory UoWFactory) GenerateReceiptCommandHandler {
	return GenerateReceiptCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewReceiptAssembler(),
	}
}

// Handle processes the receipt command and returns the assembled receipt.
// Returns an ObjectNotFoundError when the delivery or any of its related
// aggregates is missing.
func (h GenerateReceiptCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateReceiptCommand,
) (services.ReceiptData, error) {
	if err := cmd.Validate(); err != nil {
		return services.ReceiptData{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReceiptData{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return services.ReceiptData{}, err
	}

	p, err := uow.ParcelRepository().Get(ctx, d.ParcelID())
	if err != nil {
		return services.ReceiptData{}, err
	}

	drv, err := uow.DriverRepository().Get(ctx, d.DriverID())
	if err != nil {
		return services.ReceiptData{}, err
	}

	z, err := uow.ZoneRepository().Get(ctx, p.ZoneID())
	if err != nil {
		return services.ReceiptData{}, err
	}

	receipt, err := h.assembler.Assemble(d, p, drv, z, time.Now().UTC())
	if err != nil {
		return services.ReceiptData{}, err
	}

	if err = d.MarkReceiptGenerated(); err != nil {
		return services.ReceiptData{}, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return services.ReceiptData{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReceiptData{}, err
	}

	return receipt, nil
}
