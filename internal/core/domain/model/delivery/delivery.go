package delivery

import (
	"errors"
	"time"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"
)

// Domain errors for delivery operations.
var (
	// ErrAlreadyDelivered is returned when attempting to complete a delivery
	// that has already been completed.
	ErrAlreadyDelivered = errors.New("delivery is already delivered")
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the audit record of one parcel-driver assignment, tracked from
// dispatch through completion or failure. Deliveries are never deleted; a
// failed delivery remains as history while its parcel returns to the dispatch
// pool under a new delivery.
//
// Invariants:
//   - Exactly one non-terminal delivery exists per parcel at a time
//     (enforced at dispatch, not by this aggregate alone)
//   - CompletedAt is set exactly when the status is Delivered
type Delivery struct {
	id               kernel.UUID
	parcelID         kernel.UUID
	driverID         kernel.UUID
	status           Status
	estimatedRoute   string
	receiptGenerated bool
	failureReason    string
	startedAt        time.Time
	completedAt      *time.Time
	guard            kernel.ConstructorGuard
}

// NewDelivery creates a Delivery in Assigned status with the given initial
// route estimate (serialized JSON) and start time.
func NewDelivery(
	id kernel.UUID,
	parcelID kernel.UUID,
	driverID kernel.UUID,
	estimatedRoute string,
	startedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status: Assigned,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setParcelID(parcelID),
		d.setDriverID(driverID),
		d.setStartedAt(startedAt),
	); err != nil {
		return nil, err
	}

	d.estimatedRoute = estimatedRoute
	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	parcelID kernel.UUID,
	driverID kernel.UUID,
	status Status,
	estimatedRoute string,
	receiptGenerated bool,
	failureReason string,
	startedAt time.Time,
	completedAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, parcelID, driverID, estimatedRoute, startedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.receiptGenerated = receiptGenerated
	d.failureReason = failureReason
	d.completedAt = completedAt

	return d, nil
}

// Validate ensures the Delivery was created through its constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ParcelID returns the identifier of the parcel being delivered.
func (d *Delivery) ParcelID() kernel.UUID {
	return d.parcelID
}

// DriverID returns the identifier of the driver executing the delivery.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// Status returns the delivery's lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// EstimatedRoute returns the serialized route estimate, empty until one has
// been stored.
func (d *Delivery) EstimatedRoute() string {
	return d.estimatedRoute
}

// ReceiptGenerated reports whether a receipt has been generated for this
// delivery.
func (d *Delivery) ReceiptGenerated() bool {
	return d.receiptGenerated
}

// FailureReason returns the reason given when the delivery was abandoned,
// empty for deliveries that never failed.
func (d *Delivery) FailureReason() string {
	return d.failureReason
}

// StartedAt returns the dispatch timestamp.
func (d *Delivery) StartedAt() time.Time {
	return d.startedAt
}

// CompletedAt returns the completion timestamp, nil until the delivery is
// completed.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// MarkPickedUp records the driver collecting the parcel,
// transitioning Assigned -> PickedUp.
func (d *Delivery) MarkPickedUp() error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete finishes the delivery at the given time. Fails with
// ErrAlreadyDelivered when called on a delivery that already completed;
// completing from Assigned (no recorded pickup) is allowed.
func (d *Delivery) Complete(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.completedAt = &at
	return nil
}

// Fail abandons the delivery, recording the operator's reason. The record is
// kept as a permanent audit entry; the reason may be empty.
func (d *Delivery) Fail(reason string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.failureReason = reason
	return nil
}

// SetEstimatedRoute replaces the serialized route estimate. Route workers call
// this when the recalculated route lands; storing the same route twice is a
// no-op observably, keeping the route job idempotent.
func (d *Delivery) SetEstimatedRoute(route string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if route == "" {
		return errs.NewValueIsRequiredError("route")
	}

	d.estimatedRoute = route
	return nil
}

// MarkReceiptGenerated sets the receipt flag. Setting it repeatedly is a
// no-op, which keeps the receipt job idempotent at the flag level.
func (d *Delivery) MarkReceiptGenerated() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.receiptGenerated = true
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	d.parcelID = parcelID
	return nil
}

func (d *Delivery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

func (d *Delivery) setStartedAt(startedAt time.Time) error {
	if startedAt.IsZero() {
		return errs.NewValueIsRequiredError("startedAt")
	}
	d.startedAt = startedAt
	return nil
}
