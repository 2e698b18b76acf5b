package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrGenerateReceiptCommandIsNotConstructed = errors.New(
	"GenerateReceiptCommand must be created via NewGenerateReceiptCommand constructor",
)

// GenerateReceiptCommand represents a request to produce the customer receipt
// for a completed delivery. Executed by receipt workers, not by API callers.
type GenerateReceiptCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGenerateReceiptCommand creates a command to generate a delivery receipt.
func NewGenerateReceiptCommand(deliveryID kernel.UUID) (GenerateReceiptCommand, error) {
	cmd := GenerateReceiptCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return GenerateReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReceiptCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to bill.
func (c GenerateReceiptCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *GenerateReceiptCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
