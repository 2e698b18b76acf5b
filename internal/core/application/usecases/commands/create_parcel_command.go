package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickupAddress is required")
	ErrDeliveryAddressIsRequired = errors.New("deliveryAddress is required")
	ErrWeightIsInvalid           = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to register a parcel for delivery.
// The parcel enters the dispatch pool in Pending status.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	pickupLat       float64
	pickupLng       float64
	pickupAddress   string
	deliveryLat     float64
	deliveryLng     float64
	deliveryAddress string
	weightKg        float64
	zoneID          kernel.UUID

	guard kernel.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identity, both coordinates, both addresses, weight, and the zone
// reference.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	pickupLat float64,
	pickupLng float64,
	pickupAddress string,
	deliveryLat float64,
	deliveryLng float64,
	deliveryAddress string,
	weightKg float64,
	zoneID kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setPickup(pickupLat, pickupLng, pickupAddress),
		cmd.setDropoff(deliveryLat, deliveryLng, deliveryAddress),
		cmd.setWeightKg(weightKg),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// PickupLat returns the pickup latitude.
func (c CreateParcelCommand) PickupLat() float64 {
	return c.pickupLat
}

// PickupLng returns the pickup longitude.
func (c CreateParcelCommand) PickupLng() float64 {
	return c.pickupLng
}

// PickupAddress returns the human-readable pickup address.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryLat returns the delivery latitude.
func (c CreateParcelCommand) DeliveryLat() float64 {
	return c.deliveryLat
}

// DeliveryLng returns the delivery longitude.
func (c CreateParcelCommand) DeliveryLng() float64 {
	return c.deliveryLng
}

// DeliveryAddress returns the human-readable delivery address.
func (c CreateParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// ZoneID returns the zone the parcel belongs to.
func (c CreateParcelCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setPickup(lat float64, lng float64, address string) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}
	if address == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupLat = lat
	c.pickupLng = lng
	c.pickupAddress = address
	return nil
}

func (c *CreateParcelCommand) setDropoff(lat float64, lng float64, address string) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryLat = lat
	c.deliveryLng = lng
	c.deliveryAddress = address
	return nil
}

func (c *CreateParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}
