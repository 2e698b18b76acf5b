package parcelrepo

import (
	"context"
	"errors"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

// Update saves an existing parcel to the database.
// Select("*") forces the driver_id column to be written even when the update
// clears it back to NULL after a failed delivery.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a parcel by its customer-facing tracking code.
func (r *GormParcelRepository) GetByTrackingCode(
	ctx context.Context,
	trackingCode string,
) (*parcel.Parcel, error) {
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", trackingCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", trackingCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingInZone retrieves pending parcels in the zone, oldest first.
func (r *GormParcelRepository) GetAllPendingInZone(
	ctx context.Context,
	zoneID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("zone_id = ? AND status = ?", zoneID.Bytes(), parcel.Pending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
