package queries

import (
	"context"
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern;
// the join avoids loading three aggregates per row.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active deliveries, newest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.started_at,
			p.tracking_code,
			dr.name,
			dr.phone
		FROM deliveries d
		JOIN parcels p ON p.id = d.parcel_id
		JOIN drivers dr ON dr.id = d.driver_id
		WHERE d.status IN (?, ?)
		ORDER BY d.started_at DESC
	`, delivery.Assigned.String(), delivery.PickedUp.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id uuid.UUID
		var startedAt time.Time

		err = rows.Scan(
			&id,
			&resp.Status,
			&startedAt,
			&resp.TrackingCode,
			&resp.DriverName,
			&resp.DriverPhone,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DeliveryID = deliveryID
		resp.StartedAt = startedAt

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
