package services_test

import (
	"testing"

	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherFixtureParcel(t *testing.T, zoneID kernel.UUID) *parcel.Parcel {
	t.Helper()

	pickup, err := kernel.NewGeoPoint(33.5731, -7.5898)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(33.5892, -7.6031)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), pickup, "12 Rue A", dropoff, "7 Rue B", 2.5, zoneID)
	require.NoError(t, err)
	return p
}

func matcherFixtureDriver(t *testing.T, name string, capacity int, zoneID kernel.UUID) *driver.Driver {
	t.Helper()

	location, err := kernel.NewGeoPoint(33.58, -7.60)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), name, "+212600000000", location, capacity, zoneID)
	require.NoError(t, err)
	return d
}

func TestDriverMatcher_Match(t *testing.T) {
	matcher := services.NewDriverMatcher()

	t.Run("picks_highest_capacity_available_driver", func(t *testing.T) {
		// Given
		zoneID := kernel.NewUUID()
		p := matcherFixtureParcel(t, zoneID)
		low := matcherFixtureDriver(t, "Low", 3, zoneID)
		high := matcherFixtureDriver(t, "High", 5, zoneID)
		mid := matcherFixtureDriver(t, "Mid", 4, zoneID)

		// When
		best, err := matcher.Match(p, []*driver.Driver{low, high, mid})

		// Then
		require.NoError(t, err)
		assert.True(t, best.IsEqual(high))
	})

	t.Run("skips_busy_drivers", func(t *testing.T) {
		zoneID := kernel.NewUUID()
		p := matcherFixtureParcel(t, zoneID)
		busy := matcherFixtureDriver(t, "Busy", 10, zoneID)
		require.NoError(t, busy.Claim())
		free := matcherFixtureDriver(t, "Free", 2, zoneID)

		best, err := matcher.Match(p, []*driver.Driver{busy, free})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(free))
	})

	t.Run("skips_offline_drivers", func(t *testing.T) {
		zoneID := kernel.NewUUID()
		p := matcherFixtureParcel(t, zoneID)
		offline := matcherFixtureDriver(t, "Offline", 10, zoneID)
		require.NoError(t, offline.GoOffline())

		_, err := matcher.Match(p, []*driver.Driver{offline})

		assert.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("skips_drivers_from_other_zones", func(t *testing.T) {
		zoneID := kernel.NewUUID()
		p := matcherFixtureParcel(t, zoneID)
		foreign := matcherFixtureDriver(t, "Foreign", 10, kernel.NewUUID())
		local := matcherFixtureDriver(t, "Local", 1, zoneID)

		best, err := matcher.Match(p, []*driver.Driver{foreign, local})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(local))
	})

	t.Run("empty_candidate_list_yields_no_driver", func(t *testing.T) {
		p := matcherFixtureParcel(t, kernel.NewUUID())

		_, err := matcher.Match(p, nil)

		assert.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("capacity_tie_keeps_first_candidate", func(t *testing.T) {
		zoneID := kernel.NewUUID()
		p := matcherFixtureParcel(t, zoneID)
		first := matcherFixtureDriver(t, "First", 5, zoneID)
		second := matcherFixtureDriver(t, "Second", 5, zoneID)

		best, err := matcher.Match(p, []*driver.Driver{first, second})

		require.NoError(t, err)
		assert.True(t, best.IsEqual(first))
	})

	t.Run("unconstructed_parcel_fails", func(t *testing.T) {
		var p parcel.Parcel

		_, err := matcher.Match(&p, nil)

		assert.ErrorIs(t, err, parcel.ErrParcelIsNotConstructed)
	})
}
