package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents a driver reporting that the parcel has been
// collected from the pickup point.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record a pickup on the delivery.
func NewMarkPickedUpCommand(deliveryID kernel.UUID) (MarkPickedUpCommand, error) {
	cmd := MarkPickedUpCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being picked up.
func (c MarkPickedUpCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *MarkPickedUpCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
