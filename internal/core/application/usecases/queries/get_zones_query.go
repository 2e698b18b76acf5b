// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrGetZonesQueryIsNotConstructed = errors.New(
	"GetZonesQuery must be created via NewGetZonesQuery constructor",
)

// GetZonesQuery retrieves every service zone.
// Reads go through the zone cache first; the database is only hit on a miss.
//
// Example:
//
//	query := NewGetZonesQuery()
//	handler := NewGetZonesQueryHandler(db, cache)
//
//	zones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve zones: %w", err)
//	}
type GetZonesQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetZonesQuery creates a query to retrieve all zones.
// This is a parameterless query that fetches the complete zone list.
func NewGetZonesQuery() GetZonesQuery {
	return GetZonesQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// GetZonesQueryResponse represents one zone in the read model.
type GetZonesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
}
