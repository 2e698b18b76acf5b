// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Rows are never deleted; failed deliveries stay as audit history.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID         uuid.UUID `gorm:"type:uuid;index"`
	DriverID         uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	EstimatedRoute   string    `gorm:"type:text"`
	ReceiptGenerated bool
	FailureReason    string `gorm:"type:text"`
	StartedAt        time.Time
	CompletedAt      *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		ParcelID:         aggregate.ParcelID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		Status:           aggregate.Status().String(),
		EstimatedRoute:   aggregate.EstimatedRoute(),
		ReceiptGenerated: aggregate.ReceiptGenerated(),
		FailureReason:    aggregate.FailureReason(),
		StartedAt:        aggregate.StartedAt(),
		CompletedAt:      aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		parcelID,
		driverID,
		status,
		dto.EstimatedRoute,
		dto.ReceiptGenerated,
		dto.FailureReason,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
