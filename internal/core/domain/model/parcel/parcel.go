package parcel

import (
	"errors"
	"fmt"
	"strings"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingCodePrefix prefixes every generated tracking code.
const trackingCodePrefix = "TRK"

// Domain errors for parcel operations.
var (
	// ErrPickupAddressIsRequired is returned when the pickup address is empty.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents a shipment moving from a pickup point to a delivery point
// inside one zone. It is an aggregate root whose status machine mirrors the
// delivery lifecycle, and it carries the unique tracking code customers use.
//
// Invariants:
//   - Tracking code is unique and generated at creation
//   - Weight must be positive
//   - Driver reference is non-nil exactly while status is Assigned, PickedUp,
//     or Delivered
type Parcel struct {
	id              kernel.UUID
	trackingCode    string
	status          Status
	pickup          kernel.GeoPoint
	pickupAddress   string
	dropoff         kernel.GeoPoint
	deliveryAddress string
	weightKg        float64
	zoneID          kernel.UUID
	driverID        *kernel.UUID
	guard           kernel.ConstructorGuard
}

// NewParcel creates a Parcel in Pending status with a freshly generated
// tracking code.
func NewParcel(
	id kernel.UUID,
	pickup kernel.GeoPoint,
	pickupAddress string,
	dropoff kernel.GeoPoint,
	deliveryAddress string,
	weightKg float64,
	zoneID kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{
		trackingCode: generateTrackingCode(),
		status:       Pending,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPickup(pickup),
		p.setPickupAddress(pickupAddress),
		p.setDropoff(dropoff),
		p.setDeliveryAddress(deliveryAddress),
		p.setWeightKg(weightKg),
		p.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage,
// including its tracking code, status, and driver binding. The status/driver
// consistency invariant is re-checked on the way in.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	status Status,
	pickup kernel.GeoPoint,
	pickupAddress string,
	dropoff kernel.GeoPoint,
	deliveryAddress string,
	weightKg float64,
	zoneID kernel.UUID,
	driverID *kernel.UUID,
) (*Parcel, error) {
	p, err := NewParcel(id, pickup, pickupAddress, dropoff, deliveryAddress, weightKg, zoneID)
	if err != nil {
		return nil, err
	}

	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}

	p.trackingCode = trackingCode
	p.status = status
	p.driverID = driverID

	return p, nil
}

// Validate ensures the Parcel was created through its constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the customer-facing tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// Status returns the parcel's lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Pickup returns the pickup coordinate.
func (p *Parcel) Pickup() kernel.GeoPoint {
	return p.pickup
}

// PickupAddress returns the human-readable pickup address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// Dropoff returns the delivery coordinate.
func (p *Parcel) Dropoff() kernel.GeoPoint {
	return p.dropoff
}

// DeliveryAddress returns the human-readable delivery address.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// ZoneID returns the identifier of the zone the parcel belongs to.
func (p *Parcel) ZoneID() kernel.UUID {
	return p.zoneID
}

// Driver returns the bound driver's ID, or nil while no driver is bound.
func (p *Parcel) Driver() *kernel.UUID {
	return p.driverID
}

// Assign binds the parcel to a driver, transitioning Pending -> Assigned.
func (p *Parcel) Assign(driverID kernel.UUID) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.driverID = &driverID
	return nil
}

// MarkPickedUp records that the bound driver collected the parcel.
func (p *Parcel) MarkPickedUp() error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// MarkDelivered records that the parcel reached its destination.
func (p *Parcel) MarkDelivered() error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// ResetToPending clears the driver binding and returns the parcel to Pending
// after a failed delivery, making it eligible for re-dispatch.
func (p *Parcel) ResetToPending() error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Reset()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.driverID = nil
	return nil
}

// Cancel withdraws a Pending parcel from dispatch.
func (p *Parcel) Cancel() error {
	if err := p.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	p.pickup = pickup
	return nil
}

func (p *Parcel) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	p.pickupAddress = address
	return nil
}

func (p *Parcel) setDropoff(dropoff kernel.GeoPoint) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	p.dropoff = dropoff
	return nil
}

func (p *Parcel) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	p.deliveryAddress = address
	return nil
}

func (p *Parcel) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	p.zoneID = zoneID
	return nil
}

// generateTrackingCode produces a code like "TRK-9F2C41A7" from fresh UUID
// entropy.
func generateTrackingCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", trackingCodePrefix, strings.ToUpper(raw[:8]))
}
