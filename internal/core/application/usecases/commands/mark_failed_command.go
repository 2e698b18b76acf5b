package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrMarkFailedCommandIsNotConstructed = errors.New(
	"MarkFailedCommand must be created via NewMarkFailedCommand constructor",
)

// MarkFailedCommand represents a report that a delivery cannot be completed.
// The reason is stored on the failed delivery record for later audits.
type MarkFailedCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	reason     string

	guard kernel.ConstructorGuard
}

// NewMarkFailedCommand creates a command to abandon the delivery.
// The reason may be empty.
func NewMarkFailedCommand(deliveryID kernel.UUID, reason string) (MarkFailedCommand, error) {
	cmd := MarkFailedCommand{
		reason: reason,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return MarkFailedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkFailedCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being abandoned.
func (c MarkFailedCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Reason returns the free-form failure reason.
func (c MarkFailedCommand) Reason() string {
	return c.reason
}

func (c *MarkFailedCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
