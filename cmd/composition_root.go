package cmd

import (
	"logistima/internal/adapters/out/postgres"
	"logistima/internal/adapters/out/rediscache"
	"logistima/internal/adapters/out/redisqueue"
	"logistima/internal/core/application/usecases/commands"
	"logistima/internal/core/application/usecases/queries"
	"logistima/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure adapters into command and query
// handlers. Both the app and worker processes build from the same root.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	jobQueue   ports.JobQueue
	zoneCache  ports.ZoneCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		jobQueue:   redisqueue.NewRedisJobQueue(redisClient),
		zoneCache:  rediscache.NewRedisZoneCache(redisClient, config.ZoneCacheTTL),
	}
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f, c.zoneCache)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchParcelCommandHandler() commands.DispatchParcelCommandHandler {
	return commands.NewDispatchParcelCommandHandler(c.fullUoWFactory(), c.jobQueue)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.fullUoWFactory(), c.jobQueue)
}

func (c *CompositionRoot) CreateMarkFailedCommandHandler() commands.MarkFailedCommandHandler {
	return commands.NewMarkFailedCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRecalculateRouteCommandHandler() commands.RecalculateRouteCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateReceiptCommandHandler() commands.GenerateReceiptCommandHandler {
	return commands.NewGenerateReceiptCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.gormDB, c.zoneCache)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFailedJobsQueryHandler() queries.GetFailedJobsQueryHandler {
	return queries.NewGetFailedJobsQueryHandler(c.jobQueue)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
