// Package ports defines repository and infrastructure interfaces for the
// dispatch domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists changes to an existing zone aggregate.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a zone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every zone, ordered by name.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}
