package commands

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
)

var ErrDispatchParcelCommandIsNotConstructed = errors.New(
	"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
)

// DispatchParcelCommand represents a request to assign a pending parcel to an
// available driver in its zone.
//
// Example:
//
//	cmd, err := NewDispatchParcelCommand(parcelID)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    log.Println("Every driver in the zone is busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Assigned to %s", result.Driver.Name())
//	}
type DispatchParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDispatchParcelCommand creates a command to dispatch the given parcel.
func NewDispatchParcelCommand(parcelID kernel.UUID) (DispatchParcelCommand, error) {
	cmd := DispatchParcelCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setParcelID(parcelID); err != nil {
		return DispatchParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchParcelCommand) Validate() error {
	return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to dispatch.
func (c DispatchParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *DispatchParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
