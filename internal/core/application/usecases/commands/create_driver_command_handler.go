package commands

import (
	"context"

	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// Verifies the target zone exists before persisting the driver.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Returns an ObjectNotFoundError when the referenced zone does not exist.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(cmd.Lat(), cmd.Lng())
	if err != nil {
		return err
	}

	aggregate, err := driver.NewDriver(
		cmd.DriverID(), cmd.Name(), cmd.Phone(), location, cmd.Capacity(), cmd.ZoneID(),
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

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
