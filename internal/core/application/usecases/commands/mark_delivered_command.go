package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a driver reporting that the parcel reached
// its destination.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete the delivery.
func NewMarkDeliveredCommand(deliveryID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being completed.
func (c MarkDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *MarkDeliveredCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
