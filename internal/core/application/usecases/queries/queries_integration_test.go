package queries_test

import (
	"context"
	"testing"
	"time"

	"logistima/internal/adapters/out/postgres/deliveryrepo"
	"logistima/internal/adapters/out/postgres/driverrepo"
	"logistima/internal/adapters/out/postgres/parcelrepo"
	"logistima/internal/adapters/out/postgres/zonerepo"
	"logistima/internal/core/application/usecases/queries"
	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/core/domain/model/zone"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubZoneCache is an in-memory ports.ZoneCache for query tests.
type stubZoneCache struct {
	zones    []*zone.Zone
	hit      bool
	setCalls int
}

func (c *stubZoneCache) GetAll(_ context.Context) ([]*zone.Zone, bool) {
	return c.zones, c.hit
}

func (c *stubZoneCache) SetAll(_ context.Context, zones []*zone.Zone) error {
	c.zones = zones
	c.hit = true
	c.setCalls++
	return nil
}

func (c *stubZoneCache) Invalidate(_ context.Context) error {
	c.zones = nil
	c.hit = false
	return nil
}

// noopTracker satisfies the repositories' aggregate tracking without a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *stubZoneCache
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&driverrepo.DriverDTO{},
		&parcelrepo.ParcelDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE zones, drivers, parcels, deliveries").Error
	suite.Require().NoError(err)
	suite.cache = &stubZoneCache{}
}

func (suite *QueryHandlersTestSuite) TestGetZones_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetZonesQueryHandler(suite.db, suite.cache)

	result, err := handler.Handle(context.Background(), queries.NewGetZonesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetZones_ReturnsZonesOrderedByName() {
	suite.saveZone(suite.newZone("Sidi Maarouf", 33.5200, -7.6550))
	suite.saveZone(suite.newZone("Ain Diab", 33.5950, -7.6650))
	suite.saveZone(suite.newZone("Casablanca Centre", 33.5731, -7.5898))

	handler := queries.NewGetZonesQueryHandler(suite.db, suite.cache)

	result, err := handler.Handle(context.Background(), queries.NewGetZonesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Ain Diab", result[0].Name)
	suite.Equal("Casablanca Centre", result[1].Name)
	suite.Equal("Sidi Maarouf", result[2].Name)
	suite.InDelta(33.5731, result[1].CenterLat, 1e-9)
	suite.InDelta(-7.5898, result[1].CenterLng, 1e-9)
	suite.InDelta(10.0, result[1].RadiusKm, 1e-9)
}

func (suite *QueryHandlersTestSuite) TestGetZones_MissRepopulatesCache() {
	suite.saveZone(suite.newZone("Casablanca Centre", 33.5731, -7.5898))

	handler := queries.NewGetZonesQueryHandler(suite.db, suite.cache)

	_, err := handler.Handle(context.Background(), queries.NewGetZonesQuery())
	suite.Require().NoError(err)
	suite.Equal(1, suite.cache.setCalls)

	// Second read is served from the cache without touching the table.
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE zones").Error)

	result, err := handler.Handle(context.Background(), queries.NewGetZonesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Casablanca Centre", result[0].Name)
	suite.Equal(1, suite.cache.setCalls)
}

func (suite *QueryHandlersTestSuite) TestGetZones_InvalidQuery_ReturnsError() {
	handler := queries.NewGetZonesQueryHandler(suite.db, suite.cache)

	result, err := handler.Handle(context.Background(), queries.GetZonesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetZonesQuery constructor")
}

func (suite *QueryHandlersTestSuite) TestGetActiveDeliveries_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetActiveDeliveriesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveDeliveries_ReturnsOnlyActiveNewestFirst() {
	z := suite.newZone("Casablanca Centre", 33.5731, -7.5898)
	suite.saveZone(z)

	older := suite.saveActiveDelivery(z, "Youssef", "+212600000001",
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	newer := suite.saveActiveDelivery(z, "Amina", "+212600000002",
		time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC))

	// A completed delivery must not appear.
	done := suite.saveActiveDelivery(z, "Karim", "+212600000003",
		time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(done.MarkPickedUp())
	suite.Require().NoError(done.Complete(done.StartedAt().Add(20 * time.Minute)))
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), done))

	handler := queries.NewGetActiveDeliveriesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].DeliveryID.IsEqual(newer.ID()))
	suite.Equal("Amina", result[0].DriverName)
	suite.Equal("+212600000002", result[0].DriverPhone)
	suite.Equal(delivery.Assigned.String(), result[0].Status)
	suite.NotEmpty(result[0].TrackingCode)

	suite.True(result[1].DeliveryID.IsEqual(older.ID()))
	suite.Equal("Youssef", result[1].DriverName)
}

func (suite *QueryHandlersTestSuite) TestGetActiveDeliveries_IncludesPickedUp() {
	z := suite.newZone("Casablanca Centre", 33.5731, -7.5898)
	suite.saveZone(z)

	d := suite.saveActiveDelivery(z, "Youssef", "+212600000001",
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(d.MarkPickedUp())
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), d))

	handler := queries.NewGetActiveDeliveriesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(delivery.PickedUp.String(), result[0].Status)
}

func (suite *QueryHandlersTestSuite) newZone(name string, lat, lng float64) *zone.Zone {
	center, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)
	z, err := zone.NewZone(kernel.NewUUID(), name, center, 10)
	suite.Require().NoError(err)
	return z
}

func (suite *QueryHandlersTestSuite) saveZone(z *zone.Zone) {
	repo := zonerepo.NewGormZoneRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), z))
}

// saveActiveDelivery persists a driver, an assigned parcel, and an Assigned
// delivery that started at the given time.
func (suite *QueryHandlersTestSuite) saveActiveDelivery(
	z *zone.Zone,
	driverName string,
	driverPhone string,
	startedAt time.Time,
) *delivery.Delivery {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(33.5750, -7.5900)
	suite.Require().NoError(err)
	drv, err := driver.NewDriver(kernel.NewUUID(), driverName, driverPhone, location, 5, z.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(drv.Claim())
	suite.Require().NoError(
		driverrepo.NewGormDriverRepository(suite.db, noopTracker{}).Add(ctx, drv))

	pickup, err := kernel.NewGeoPoint(33.5731, -7.5898)
	suite.Require().NoError(err)
	dropoff, err := kernel.NewGeoPoint(33.5900, -7.6100)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), pickup, "12 Rue A", dropoff, "7 Rue B", 2.5, z.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(p.Assign(drv.ID()))
	suite.Require().NoError(
		parcelrepo.NewGormParcelRepository(suite.db, noopTracker{}).Add(ctx, p))

	d, err := delivery.NewDelivery(kernel.NewUUID(), p.ID(), drv.ID(), "", startedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(
		deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{}).Add(ctx, d))

	return d
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
