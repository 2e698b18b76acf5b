// Package zonerepo provides data transfer objects and mapping functions for zone persistence.
// This package implements the repository pattern for the zone domain aggregate, handling
// the conversion between domain entities and database representations.
package zonerepo

import (
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
type ZoneDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
}

// TableName specifies the database table name for zone entities.
// Overrides GORM's default naming convention to use "zones".
func (ZoneDTO) TableName() string {
	return "zones"
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		CenterLat: aggregate.Center().Lat(),
		CenterLng: aggregate.Center().Lng(),
		RadiusKm:  aggregate.RadiusKm(),
	}
}

// toDomain converts a database DTO to a zone domain aggregate using RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	center, err := kernel.NewGeoPoint(dto.CenterLat, dto.CenterLng)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, center, dto.RadiusKm)
}
