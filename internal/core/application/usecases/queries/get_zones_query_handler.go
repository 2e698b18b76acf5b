package queries

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"
	"logistima/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetZonesQueryHandler retrieves the zone list, read-through cached.
// A cache hit skips the database entirely; a miss loads from the database and
// repopulates the cache. Cache write failures are swallowed, the entry just
// stays cold until the next read.
type GetZonesQueryHandler struct {
	db    *gorm.DB
	cache ports.ZoneCache
}

// NewGetZonesQueryHandler creates a handler for zone list queries.
// Requires a GORM database connection and the zone cache.
func NewGetZonesQueryHandler(db *gorm.DB, cache ports.ZoneCache) GetZonesQueryHandler {
	return GetZonesQueryHandler{db: db, cache: cache}
}

// Handle executes the query to retrieve all zones, sorted by name.
func (h GetZonesQueryHandler) Handle(
	ctx context.Context,
	query GetZonesQuery,
) ([]GetZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := h.cache.GetAll(ctx); ok {
		return toZoneResponses(cached), nil
	}

	zones, err := h.loadZones(ctx)
	if err != nil {
		return nil, err
	}

	_ = h.cache.SetAll(ctx, zones)

	return toZoneResponses(zones), nil
}

func (h GetZonesQueryHandler) loadZones(ctx context.Context) ([]*zone.Zone, error) {
	zones := make([]*zone.Zone, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			center_lat,
			center_lng,
			radius_km
		FROM zones
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var centerLat, centerLng, radiusKm float64

		if err = rows.Scan(&id, &name, &centerLat, &centerLng, &radiusKm); err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		center, geoErr := kernel.NewGeoPoint(centerLat, centerLng)
		if geoErr != nil {
			return nil, geoErr
		}

		z, zoneErr := zone.RestoreZone(zoneID, name, center, radiusKm)
		if zoneErr != nil {
			return nil, zoneErr
		}

		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func toZoneResponses(zones []*zone.Zone) []GetZonesQueryResponse {
	responses := make([]GetZonesQueryResponse, 0, len(zones))
	for _, z := range zones {
		responses = append(responses, GetZonesQueryResponse{
			ID:        z.ID(),
			Name:      z.Name(),
			CenterLat: z.Center().Lat(),
			CenterLng: z.Center().Lng(),
			RadiusKm:  z.RadiusKm(),
		})
	}
	return responses
}
