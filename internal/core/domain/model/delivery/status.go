package delivery

import (
	"fmt"

	"logistima/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Assigned ──> PickedUp ──> Delivered
//	    │            │
//	    ├────────────┴──> Failed
//	    └──> Delivered  (pickup is not enforced before completion)
//
// Delivered and Failed are terminal in both directions: a delivered
// delivery cannot fail and a failed delivery cannot be delivered. Once a
// failure releases the driver and returns the parcel to the pool, a late
// completion would corrupt both.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status when dispatch creates the delivery.
	Assigned

	// PickedUp means the driver has collected the parcel.
	PickedUp

	// Delivered means the delivery finished successfully. Final state.
	Delivered

	// Failed means the delivery was abandoned; the parcel returns to the
	// dispatch pool.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Failed:    "failed",
	}
}

// StatusFromString parses the persisted string representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Assigned, PickedUp, Delivered, Failed:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid delivery status", s))
}

// String returns the persisted, human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions that
// keep the delivery active.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// PickUp transitions the status to PickedUp. Only freshly assigned deliveries
// may record a pickup.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateError("delivery", s.String(), "pick up")
	}
	return PickedUp, nil
}

// Complete transitions the status to Delivered. Completing twice returns
// ErrAlreadyDelivered; a Failed delivery stays failed because its driver and
// parcel have already been released.
func (s Status) Complete() (Status, error) {
	if s == Delivered {
		return Unknown, ErrAlreadyDelivered
	}
	if s == Failed {
		return Unknown, errs.NewInvalidStateError("delivery", s.String(), "complete")
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}

// Fail transitions the status to Failed. Terminal deliveries cannot fail:
// a completed delivery stays completed, and failing twice is refused.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("delivery", s.String(), "fail")
	}
	return Failed, nil
}
