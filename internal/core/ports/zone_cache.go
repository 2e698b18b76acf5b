package ports

import (
	"context"

	"logistima/internal/core/domain/model/zone"
)

// ZoneCache defines the contract for the read-through zone list cache.
// Zones change rarely and are read on every dispatch, so the full list is
// cached as one entry with a TTL. A cache failure must never fail a read:
// implementations return misses, callers fall back to the repository.
type ZoneCache interface {
	// GetAll returns the cached zone list. The second result is false on a
	// cache miss or an unreadable entry.
	GetAll(ctx context.Context) ([]*zone.Zone, bool)

	// SetAll replaces the cached zone list.
	SetAll(ctx context.Context, zones []*zone.Zone) error

	// Invalidate drops the cached zone list. Called after any zone mutation.
	Invalidate(ctx context.Context) error
}
