package queries

import (
	"errors"
	"time"

	"logistima/internal/core/domain/model/kernel"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves every delivery still in flight, meaning
// deliveries in Assigned or PickedUp status.
type GetActiveDeliveriesQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve all active deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents one in-flight delivery joined
// with its parcel and driver for display.
type GetActiveDeliveriesQueryResponse struct {
	DeliveryID   kernel.UUID
	Status       string
	TrackingCode string
	DriverName   string
	DriverPhone  string
	StartedAt    time.Time
}
