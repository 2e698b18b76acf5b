package driver

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a contact phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a courier working a single zone.
// It is an aggregate root managing driver identity, current position,
// carrying capacity, and availability.
//
// Business rules:
//   - A driver belongs to exactly one zone
//   - Capacity must be positive; dispatch prefers higher capacity
//   - Status is Busy exactly while the driver is bound to one active delivery
//   - Only Available drivers can be claimed by dispatch
type Driver struct {
	id       kernel.UUID
	name     string
	phone    string
	location kernel.GeoPoint
	capacity int
	status   Status
	zoneID   kernel.UUID
	guard    kernel.ConstructorGuard
}

// NewDriver creates a Driver in Available status.
// All parameters are validated; errors are aggregated so a caller sees every
// violation at once.
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	location kernel.GeoPoint,
	capacity int,
	zoneID kernel.UUID,
) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setLocation(location),
		d.setCapacity(capacity),
		d.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its persisted status.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	location kernel.GeoPoint,
	capacity int,
	status Status,
	zoneID kernel.UUID,
) (*Driver, error) {
	d, err := NewDriver(id, name, phone, location, capacity, zoneID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate ensures the Driver was created through its constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's human-readable name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Location returns the driver's last known position.
func (d *Driver) Location() kernel.GeoPoint {
	return d.location
}

// Capacity returns the driver's carrying capacity.
func (d *Driver) Capacity() int {
	return d.capacity
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// ZoneID returns the identifier of the zone the driver works.
func (d *Driver) ZoneID() kernel.UUID {
	return d.zoneID
}

// IsAvailable reports whether dispatch may claim this driver.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// Claim binds the driver to a new delivery, transitioning Available -> Busy.
// Fails with an InvalidStateError when the driver is not Available.
//
// Note: concurrent dispatchers must additionally claim the driver through a
// conditional storage update; this in-memory transition alone does not guard
// against a read-modify-write race across processes.
func (d *Driver) Claim() error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Release frees the driver after its delivery reached a terminal state,
// returning the status to Available. Safe to call repeatedly.
func (d *Driver) Release() error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Release()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// GoOffline removes the driver from dispatch consideration.
func (d *Driver) GoOffline() error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.GoOffline()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ComeOnline returns an Offline driver to Available.
func (d *Driver) ComeOnline() error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.ComeOnline()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MoveTo updates the driver's last known position.
func (d *Driver) MoveTo(location kernel.GeoPoint) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.setLocation(location)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Driver) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}
	d.capacity = capacity
	return nil
}

func (d *Driver) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	d.zoneID = zoneID
	return nil
}
