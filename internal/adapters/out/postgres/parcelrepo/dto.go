// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking code is unique; status and zone are indexed for the pending
// backlog query.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode    string    `gorm:"uniqueIndex"`
	Status          string    `gorm:"index"`
	PickupLat       float64
	PickupLng       float64
	PickupAddress   string
	DeliveryLat     float64
	DeliveryLng     float64
	DeliveryAddress string
	WeightKg        float64
	ZoneID          uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode(),
		Status:          aggregate.Status().String(),
		PickupLat:       aggregate.Pickup().Lat(),
		PickupLng:       aggregate.Pickup().Lng(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryLat:     aggregate.Dropoff().Lat(),
		DeliveryLng:     aggregate.Dropoff().Lng(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		WeightKg:        aggregate.WeightKg(),
		ZoneID:          aggregate.ZoneID().Bytes(),
		DriverID:        driverID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		status,
		pickup,
		dto.PickupAddress,
		dropoff,
		dto.DeliveryAddress,
		dto.WeightKg,
		zoneID,
		driverID,
	)
}
