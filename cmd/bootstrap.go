package cmd

import (
	"fmt"

	"logistima/internal/adapters/out/postgres/deliveryrepo"
	"logistima/internal/adapters/out/postgres/driverrepo"
	"logistima/internal/adapters/out/postgres/parcelrepo"
	"logistima/internal/adapters/out/postgres/zonerepo"

	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB connects to postgres and migrates the schema.
func OpenDB(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	err = db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&driverrepo.DriverDTO{},
		&parcelrepo.ParcelDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// NewRedisClient builds the shared redis connection.
func NewRedisClient(config Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}
