package driver

import (
	"fmt"

	"logistima/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// State transitions:
//
//	Available ──> Busy ──> Available
//	    │
//	    └──> Offline ──> Available
//
// A driver is Busy exactly while bound to one active delivery; releasing the
// delivery (completion or failure) returns the driver to Available.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the driver can be claimed by dispatch.
	Available

	// Busy means the driver is bound to exactly one active delivery.
	Busy

	// Offline means the driver is not working and never considered by dispatch.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Returns an error for anything that is not a valid, known status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks that the Status is one of the defined working states.
func (s Status) Validate() error {
	switch s {
	case Available, Busy, Offline:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid driver status", s))
}

// String returns the persisted, human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Claim transitions the status to Busy.
//
// Valid transitions:
//   - Available -> Busy
//
// Claiming a Busy or Offline driver fails with an InvalidStateError: the
// caller must pick another candidate.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidStateError("driver", s.String(), "claim")
	}
	return Busy, nil
}

// Release transitions the status back to Available after the bound delivery
// reaches a terminal state. Releasing an Available driver is a no-op so the
// operation stays idempotent under at-least-once job delivery.
func (s Status) Release() (Status, error) {
	switch s {
	case Busy, Available:
		return Available, nil
	case Unknown, Offline:
	}
	return Unknown, errs.NewInvalidStateError("driver", s.String(), "release")
}

// GoOffline transitions the status to Offline.
// Only an Available driver may go offline; a Busy driver must finish or fail
// its delivery first.
func (s Status) GoOffline() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidStateError("driver", s.String(), "go offline")
	}
	return Offline, nil
}

// ComeOnline transitions the status from Offline back to Available.
func (s Status) ComeOnline() (Status, error) {
	if s != Offline {
		return Unknown, errs.NewInvalidStateError("driver", s.String(), "come online")
	}
	return Available, nil
}
