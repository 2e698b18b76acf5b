package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errors.New("name is required")
	ErrRadiusIsInvalid    = errors.New("radiusKm must be greater than 0")
)

// CreateZoneCommand represents a request to register a new service zone.
//
// Example:
//
//	zoneID := kernel.NewUUID()
//	cmd, err := NewCreateZoneCommand(zoneID, "Casablanca Centre", 33.5731, -7.5898, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid zone data: %w", err)
//	}
//
//	handler := NewCreateZoneCommandHandler(uowFactory, cache)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create zone: %w", err)
//	}
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID    kernel.UUID
	name      string
	centerLat float64
	centerLng float64
	radiusKm  float64

	guard kernel.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone.
// Validates identity, name, center coordinate bounds, and radius.
func NewCreateZoneCommand(
	zoneID kernel.UUID,
	name string,
	centerLat float64,
	centerLng float64,
	radiusKm float64,
) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.setCenter(centerLat, centerLng),
		cmd.setRadiusKm(radiusKm),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone's human-readable name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// CenterLat returns the latitude of the zone center.
func (c CreateZoneCommand) CenterLat() float64 {
	return c.centerLat
}

// CenterLng returns the longitude of the zone center.
func (c CreateZoneCommand) CenterLng() float64 {
	return c.centerLng
}

// RadiusKm returns the zone radius in kilometers.
func (c CreateZoneCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCenter(lat float64, lng float64) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}

	c.centerLat = lat
	c.centerLng = lng
	return nil
}

func (c *CreateZoneCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return ErrRadiusIsInvalid
	}

	c.radiusKm = radiusKm
	return nil
}
