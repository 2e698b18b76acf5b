package ports

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its customer-facing tracking code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error)

	// GetAllPendingInZone retrieves parcels in Pending status for the given
	// zone, oldest first. Used to drain the dispatch backlog.
	GetAllPendingInZone(ctx context.Context, zoneID kernel.UUID) ([]*parcel.Parcel, error)
}
