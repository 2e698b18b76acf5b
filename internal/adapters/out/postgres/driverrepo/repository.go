package driverrepo

import (
	"context"
	"errors"

	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailableInZone retrieves available drivers in the zone, highest capacity
// first, so the dispatch loop can walk the list best-first.
func (r *GormDriverRepository) GetAvailableInZone(
	ctx context.Context,
	zoneID kernel.UUID,
) ([]*driver.Driver, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("zone_id = ? AND status = ?", zoneID.Bytes(), driver.Available.String()).
		Order("capacity DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// ClaimAvailable conditionally flips the driver from Available to Busy.
// The WHERE clause makes the claim atomic: of two dispatchers racing for the
// same driver, exactly one update matches a row.
func (r *GormDriverRepository) ClaimAvailable(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), driver.Available.String()).
		Update("status", driver.Busy.String())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
