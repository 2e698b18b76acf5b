package commands_test

import (
	"testing"
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

func testGeoPoint(t *testing.T, lat float64, lng float64) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func testZone(t *testing.T) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(kernel.NewUUID(), "Casablanca Centre", testGeoPoint(t, 33.58, -7.60), 10)
	require.NoError(t, err)
	return z
}

func testParcel(t *testing.T, zoneID kernel.UUID) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		testGeoPoint(t, 33.5731, -7.5898),
		"12 Rue A",
		testGeoPoint(t, 33.5892, -7.6031),
		"7 Rue B",
		2.5,
		zoneID,
	)
	require.NoError(t, err)
	return p
}

func testDriver(t *testing.T, name string, capacity int, zoneID kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(
		kernel.NewUUID(), name, "+212600000000", testGeoPoint(t, 33.58, -7.60), capacity, zoneID,
	)
	require.NoError(t, err)
	return d
}

func testDelivery(t *testing.T, parcelID kernel.UUID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), parcelID, driverID, "", time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return d
}
