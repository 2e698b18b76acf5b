package ports

import (
	"context"

	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAvailableInZone retrieves all drivers in Available status working the
	// given zone, ordered by capacity descending. Used as the dispatch
	// candidate set.
	GetAvailableInZone(ctx context.Context, zoneID kernel.UUID) ([]*driver.Driver, error)

	// ClaimAvailable atomically transitions the driver to Busy, but only if
	// the stored status is still Available. Returns false without error when
	// a concurrent dispatcher won the claim, so the caller can fall through
	// to the next candidate.
	ClaimAvailable(ctx context.Context, id kernel.UUID) (bool, error)
}
