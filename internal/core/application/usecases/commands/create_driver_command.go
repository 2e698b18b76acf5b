package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("name is required")
	ErrPhoneIsRequired      = errors.New("phone is required")
	ErrCapacityIsInvalid    = errors.New("capacity must be greater than 0")
)

// CreateDriverCommand represents a request to register a new driver in a zone.
// New drivers start in Available status at the given position.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string
	lat      float64
	lng      float64
	capacity int
	zoneID   kernel.UUID

	guard kernel.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates identity, name, phone, position bounds, capacity, and zone reference.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	lat float64,
	lng float64,
	capacity int,
	zoneID kernel.UUID,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setPosition(lat, lng),
		cmd.setCapacity(capacity),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// Lat returns the latitude of the driver's starting position.
func (c CreateDriverCommand) Lat() float64 {
	return c.lat
}

// Lng returns the longitude of the driver's starting position.
func (c CreateDriverCommand) Lng() float64 {
	return c.lng
}

// Capacity returns the driver's carrying capacity.
func (c CreateDriverCommand) Capacity() int {
	return c.capacity
}

// ZoneID returns the zone the driver will work.
func (c CreateDriverCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setPosition(lat float64, lng float64) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}

	c.lat = lat
	c.lng = lng
	return nil
}

func (c *CreateDriverCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *CreateDriverCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
