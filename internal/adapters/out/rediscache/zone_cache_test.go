package rediscache

import (
	"context"
	"testing"
	"time"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/zone"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisZoneCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisZoneCache(client, time.Hour), mr
}

func testZone(t *testing.T, name string, lat, lng float64) *zone.Zone {
	t.Helper()
	center, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, center, 10)
	require.NoError(t, err)
	return z
}

func TestRedisZoneCache_MissOnEmptyCache(t *testing.T) {
	cache, _ := newTestCache(t)

	zones, ok := cache.GetAll(context.Background())
	assert.False(t, ok)
	assert.Nil(t, zones)
}

func TestRedisZoneCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	stored := []*zone.Zone{
		testZone(t, "Casablanca Centre", 33.5731, -7.5898),
		testZone(t, "Ain Diab", 33.5950, -7.6650),
	}
	require.NoError(t, cache.SetAll(ctx, stored))

	zones, ok := cache.GetAll(ctx)
	require.True(t, ok)
	require.Len(t, zones, 2)

	assert.True(t, zones[0].ID().IsEqual(stored[0].ID()))
	assert.Equal(t, "Casablanca Centre", zones[0].Name())
	assert.InDelta(t, 33.5731, zones[0].Center().Lat(), 1e-9)
	assert.InDelta(t, -7.5898, zones[0].Center().Lng(), 1e-9)
	assert.InDelta(t, 10.0, zones[0].RadiusKm(), 1e-9)
	assert.Equal(t, "Ain Diab", zones[1].Name())
}

func TestRedisZoneCache_SetAllReplacesPreviousList(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.SetAll(ctx, []*zone.Zone{
		testZone(t, "Casablanca Centre", 33.5731, -7.5898),
	}))
	require.NoError(t, cache.SetAll(ctx, []*zone.Zone{
		testZone(t, "Ain Diab", 33.5950, -7.6650),
	}))

	zones, ok := cache.GetAll(ctx)
	require.True(t, ok)
	require.Len(t, zones, 1)
	assert.Equal(t, "Ain Diab", zones[0].Name())
}

func TestRedisZoneCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.SetAll(ctx, []*zone.Zone{
		testZone(t, "Casablanca Centre", 33.5731, -7.5898),
	}))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok := cache.GetAll(ctx)
	assert.False(t, ok)
}

func TestRedisZoneCache_EntryExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetAll(ctx, []*zone.Zone{
		testZone(t, "Casablanca Centre", 33.5731, -7.5898),
	}))

	mr.FastForward(2 * time.Hour)

	_, ok := cache.GetAll(ctx)
	assert.False(t, ok)
}

func TestRedisZoneCache_CorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set("zones:all", "not-json"))

	zones, ok := cache.GetAll(ctx)
	assert.False(t, ok)
	assert.Nil(t, zones)
}

func TestRedisZoneCache_MissWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetAll(ctx, []*zone.Zone{
		testZone(t, "Casablanca Centre", 33.5731, -7.5898),
	}))

	mr.Close()

	_, ok := cache.GetAll(ctx)
	assert.False(t, ok)
}
