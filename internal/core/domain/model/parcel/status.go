package parcel

import (
	"fmt"

	"logistima/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//	   │ ▲          │            │
//	   │ └──────────┴────────────┘  (delivery failure resets to Pending)
//	   └──> Cancelled
//
// Delivered may also be reached directly from Assigned: completing a delivery
// does not require the pickup step to have been recorded first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status; the parcel is waiting for dispatch.
	Pending

	// Assigned means a driver has been bound to the parcel.
	Assigned

	// PickedUp means the driver has collected the parcel.
	PickedUp

	// Delivered means the parcel reached its destination. Final state.
	Delivered

	// Cancelled means the parcel was withdrawn before dispatch. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
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
		fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, PickedUp, Delivered, Cancelled:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid parcel status", s))
}

// String returns the persisted, human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assign transitions the status to Assigned. Only Pending parcels are
// dispatchable; anything else fails with an InvalidStateError.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError("parcel", s.String(), "dispatch")
	}
	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateError("parcel", s.String(), "pick up")
	}
	return PickedUp, nil
}

// Deliver transitions the status to Delivered. Pickup is not a prerequisite:
// Assigned parcels may be delivered directly.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Assigned, PickedUp:
		return Delivered, nil
	case Unknown, Pending, Delivered, Cancelled:
	}
	return Unknown, errs.NewInvalidStateError("parcel", s.String(), "deliver")
}

// Reset transitions the status back to Pending after a failed delivery so the
// parcel becomes eligible for re-dispatch.
func (s Status) Reset() (Status, error) {
	switch s {
	case Assigned, PickedUp, Pending:
		return Pending, nil
	case Unknown, Delivered, Cancelled:
	}
	return Unknown, errs.NewInvalidStateError("parcel", s.String(), "reset")
}

// Cancel transitions the status to Cancelled. Only a Pending parcel can be
// cancelled; assigned work must be failed first.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError("parcel", s.String(), "cancel")
	}
	return Cancelled, nil
}

// ValidateCanHaveDriver validates consistency between parcel status and the
// driver reference: a driver is bound exactly while the parcel is Assigned,
// PickedUp, or Delivered.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	requiresDriver := s == Assigned || s == PickedUp || s == Delivered

	if hasDriver && !requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%s parcel must not reference a driver", s.String()))
	}

	if !hasDriver && requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%s parcel must reference a driver", s.String()))
	}

	return nil
}
