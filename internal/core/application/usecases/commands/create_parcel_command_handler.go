package commands

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel intake.
// Verifies the target zone exists, then persists the parcel in Pending status
// with a freshly generated tracking code.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel intake operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel intake command.
// Returns an ObjectNotFoundError when the referenced zone does not exist.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pickup, err := kernel.NewGeoPoint(cmd.PickupLat(), cmd.PickupLng())
	if err != nil {
		return err
	}
	dropoff, err := kernel.NewGeoPoint(cmd.DeliveryLat(), cmd.DeliveryLng())
	if err != nil {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		pickup,
		cmd.PickupAddress(),
		dropoff,
		cmd.DeliveryAddress(),
		cmd.WeightKg(),
		cmd.ZoneID(),
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

	if _, err = uow.ZoneRepository().Get(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
