package services

import (
	"errors"

	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/parcel"
)

// ErrNoDriverAvailable is returned when no driver in the parcel's zone can
// take the assignment. This occurs when the candidate set is empty or every
// candidate is busy, offline, or working a different zone.
var ErrNoDriverAvailable = errors.New("no available driver in zone")

// DriverMatcher is a domain service that selects a driver for a pending
// parcel. Selection is a best-effort heuristic, not a cost-optimal
// assignment: among available drivers in the parcel's zone, the one with the
// highest capacity wins, ties broken by first-found order.
type DriverMatcher struct{}

// NewDriverMatcher creates a new DriverMatcher instance.
func NewDriverMatcher() DriverMatcher {
	return DriverMatcher{}
}

// Match returns the best candidate for the parcel, or ErrNoDriverAvailable
// when none qualifies. Candidates from other zones or in non-available status
// are skipped, so callers may pass an unfiltered list.
func (DriverMatcher) Match(p *parcel.Parcel, candidates []*driver.Driver) (*driver.Driver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var best *driver.Driver
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() || !candidate.ZoneID().IsEqual(p.ZoneID()) {
			continue
		}

		if best == nil || candidate.Capacity() > best.Capacity() {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoDriverAvailable
	}

	return best, nil
}
