package kernel

import (
	"fmt"

	"logistima/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies an aggregate: a zone, a driver, a parcel, or a delivery.
// It wraps github.com/google/uuid so that identifiers flowing through the
// domain are always validated values rather than raw strings.
//
// The zero value is invalid; obtain instances through NewUUID (fresh
// identifiers), UUIDFromString (request parameters) or UUIDFromBytes
// (database columns).
//
//	parcelID := kernel.NewUUID()
//
//	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // reject the request
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version-4 UUID.
// Every aggregate created by the system gets its identity here.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual forms accepted by uuid.Parse, including
// the plain hyphenated form, braces, the urn:uuid: prefix, and the
// 32-character form without hyphens. This is the entry point for identifiers
// arriving in URLs and job payloads.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, as read back from a
// uuid column. The all-zero (nil) UUID is rejected so that a broken row
// cannot masquerade as a constructed identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the hyphenated lowercase form,
// e.g. "550e8400-e29b-41d4-a716-446655440000".
// Implements the fmt.Stringer interface.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence adapters that map
// it onto native uuid columns. Domain code should not need this.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers refer to the same aggregate.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
// Aggregate constructors call this on every identifier they receive, so an
// uninitialized field fails at construction instead of reaching storage.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
