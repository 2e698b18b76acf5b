package zone

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"
)

// Domain errors for zone operations.
var (
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
)

// Zone represents a geographic service area used to scope driver/parcel
// matching. A zone is a circle: a center coordinate plus a radius in
// kilometers. Zones are immutable once created except through Edit.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Center must be a valid coordinate
//   - Radius must be positive
type Zone struct {
	id       kernel.UUID
	name     string
	center   kernel.GeoPoint
	radiusKm float64
	guard    kernel.ConstructorGuard
}

// NewZone creates a Zone with the given identity, name, center, and radius.
// Returns an aggregated validation error if any argument violates the zone
// invariants.
func NewZone(id kernel.UUID, name string, center kernel.GeoPoint, radiusKm float64) (*Zone, error) {
	z := &Zone{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCenter(center),
		z.setRadiusKm(radiusKm),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone from persistent storage.
// Unlike NewZone it accepts already-validated historical state but still
// re-checks every invariant to catch corrupt rows.
func RestoreZone(id kernel.UUID, name string, center kernel.GeoPoint, radiusKm float64) (*Zone, error) {
	return NewZone(id, name, center, radiusKm)
}

// Validate ensures the Zone was created through its constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares two zones by identity.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's human-readable name.
func (z *Zone) Name() string {
	return z.name
}

// Center returns the zone's center coordinate.
func (z *Zone) Center() kernel.GeoPoint {
	return z.center
}

// RadiusKm returns the zone's radius in kilometers.
func (z *Zone) RadiusKm() float64 {
	return z.radiusKm
}

// Edit replaces the zone's name, center, and radius in one validated step.
// This is the only mutation a zone supports after creation.
func (z *Zone) Edit(name string, center kernel.GeoPoint, radiusKm float64) error {
	if err := z.Validate(); err != nil {
		return err
	}

	return errors.Join(
		z.setName(name),
		z.setCenter(center),
		z.setRadiusKm(radiusKm),
	)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}
	z.center = center
	return nil
}

func (z *Zone) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidError("radiusKm")
	}
	z.radiusKm = radiusKm
	return nil
}
