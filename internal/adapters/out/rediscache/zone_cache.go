// Package rediscache implements the zone list cache on Redis.
//
// The full zone list is stored under a single key as a JSON array with a TTL.
// Cache failures degrade to misses so Redis outages never break reads.
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"

	"github.com/redis/go-redis/v9"
)

const (
	zonesKey = "zones:all"

	// DefaultTTL bounds staleness when an invalidation is lost.
	DefaultTTL = time.Hour
)

// zoneEntry is the cached representation of one zone.
type zoneEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	RadiusKm  float64 `json:"radiusKm"`
}

// RedisZoneCache implements ports.ZoneCache on a Redis connection.
type RedisZoneCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisZoneCache creates a zone cache with the given entry TTL.
// A non-positive TTL falls back to DefaultTTL.
func NewRedisZoneCache(client *redis.Client, ttl time.Duration) *RedisZoneCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisZoneCache{client: client, ttl: ttl}
}

// GetAll returns the cached zone list, or a miss when the key is absent,
// unreadable, or any entry fails to restore as a zone aggregate.
func (c *RedisZoneCache) GetAll(ctx context.Context) ([]*zone.Zone, bool) {
	raw, err := c.client.Get(ctx, zonesKey).Result()
	if err != nil {
		return nil, false
	}

	var entries []zoneEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}

	zones := make([]*zone.Zone, 0, len(entries))
	for _, entry := range entries {
		restored, err := restoreZone(entry)
		if err != nil {
			return nil, false
		}
		zones = append(zones, restored)
	}

	return zones, true
}

// SetAll replaces the cached zone list.
func (c *RedisZoneCache) SetAll(ctx context.Context, zones []*zone.Zone) error {
	entries := make([]zoneEntry, 0, len(zones))
	for _, z := range zones {
		entries = append(entries, zoneEntry{
			ID:        z.ID().String(),
			Name:      z.Name(),
			CenterLat: z.Center().Lat(),
			CenterLng: z.Center().Lng(),
			RadiusKm:  z.RadiusKm(),
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, zonesKey, raw, c.ttl).Err()
}

// Invalidate drops the cached zone list.
func (c *RedisZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, zonesKey).Err()
}

func restoreZone(entry zoneEntry) (*zone.Zone, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return nil, err
	}

	center, err := kernel.NewGeoPoint(entry.CenterLat, entry.CenterLng)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, entry.Name, center, entry.RadiusKm)
}
