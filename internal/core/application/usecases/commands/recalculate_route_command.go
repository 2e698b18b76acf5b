package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrRecalculateRouteCommandIsNotConstructed = errors.New(
	"RecalculateRouteCommand must be created via NewRecalculateRouteCommand constructor",
)

// RecalculateRouteCommand represents a request to recompute a delivery's route
// estimate from the coordinates snapshotted at dispatch. Executed by route
// workers, not by API callers.
type RecalculateRouteCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	pickupLat   float64
	pickupLng   float64
	deliveryLat float64
	deliveryLng float64

	guard kernel.ConstructorGuard
}

// NewRecalculateRouteCommand creates a command to recompute a route estimate.
func NewRecalculateRouteCommand(
	deliveryID kernel.UUID,
	pickupLat float64,
	pickupLng float64,
	deliveryLat float64,
	deliveryLng float64,
) (RecalculateRouteCommand, error) {
	cmd := RecalculateRouteCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPickup(pickupLat, pickupLng),
		cmd.setDropoff(deliveryLat, deliveryLng),
	); err != nil {
		return RecalculateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateRouteCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateRouteCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose route is recomputed.
func (c RecalculateRouteCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// PickupLat returns the pickup latitude.
func (c RecalculateRouteCommand) PickupLat() float64 {
	return c.pickupLat
}

// PickupLng returns the pickup longitude.
func (c RecalculateRouteCommand) PickupLng() float64 {
	return c.pickupLng
}

// DeliveryLat returns the delivery latitude.
func (c RecalculateRouteCommand) DeliveryLat() float64 {
	return c.deliveryLat
}

// DeliveryLng returns the delivery longitude.
func (c RecalculateRouteCommand) DeliveryLng() float64 {
	return c.deliveryLng
}

func (c *RecalculateRouteCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecalculateRouteCommand) setPickup(lat float64, lng float64) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}

	c.pickupLat = lat
	c.pickupLng = lng
	return nil
}

func (c *RecalculateRouteCommand) setDropoff(lat float64, lng float64) error {
	if _, err := kernel.NewGeoPoint(lat, lng); err != nil {
		return err
	}

	c.deliveryLat = lat
	c.deliveryLng = lng
	return nil
}
