package commands

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"
	"logistima/internal/core/ports"
)

// CreateZoneCommandHandler handles the business logic for zone creation.
// Persists the zone and invalidates the cached zone list so reads pick up the
// new zone immediately.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	zoneCache  ports.ZoneCache
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
// Requires a ZoneUoWFactory for transactional persistence and the zone cache
// to invalidate.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory, zoneCache ports.ZoneCache) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		zoneCache:  zoneCache,
	}
}

// Handle processes the zone creation command.
// Cache invalidation happens after commit; a failed invalidation is not an
// error because the entry expires on its own TTL.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	center, err := kernel.NewGeoPoint(cmd.CenterLat(), cmd.CenterLng())
	if err != nil {
		return err
	}

	aggregate, err := zone.NewZone(cmd.ZoneID(), cmd.Name(), center, cmd.RadiusKm())
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

	if err = uow.ZoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.zoneCache.Invalidate(ctx)
	return nil
}
