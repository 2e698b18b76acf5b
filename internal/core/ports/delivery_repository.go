package ports

import (
	"context"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are append-mostly audit records: rows are added and updated,
// never removed.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByParcel retrieves the single non-terminal delivery for the
	// parcel, if one exists. At most one such delivery exists at a time.
	GetActiveByParcel(ctx context.Context, parcelID kernel.UUID) (*delivery.Delivery, error)
}
