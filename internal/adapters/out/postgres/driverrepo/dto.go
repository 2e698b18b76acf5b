// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Indexed by status and zone for the dispatch candidate query.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Phone    string
	Lat      float64
	Lng      float64
	Capacity int
	Status   string    `gorm:"index"`
	ZoneID   uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Phone:    aggregate.Phone(),
		Lat:      aggregate.Location().Lat(),
		Lng:      aggregate.Location().Lng(),
		Capacity: aggregate.Capacity(),
		Status:   aggregate.Status().String(),
		ZoneID:   aggregate.ZoneID().Bytes(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, location, dto.Capacity, status, zoneID)
}
