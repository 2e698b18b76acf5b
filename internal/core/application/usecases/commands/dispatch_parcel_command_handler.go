package commands

import (
	"context"
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/driver"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/core/domain/services"
	"logistima/internal/core/ports"
	"logistima/internal/pkg/errs"
)

// DispatchParcelResult carries the outcome of a successful dispatch: the new
// delivery record and the driver it was assigned to.
type DispatchParcelResult struct {
	Delivery *delivery.Delivery
	Driver   *driver.Driver
}

// DispatchParcelCommandHandler orchestrates parcel dispatch.
// Selects the best available driver in the parcel's zone, claims the driver,
// creates the delivery record with an initial route estimate, and enqueues a
// route recalculation job. All state changes commit in one transaction.
//
// The driver claim is a conditional storage update: two dispatchers racing for
// the same driver cannot both win, the loser falls through to the next
// candidate.
type DispatchParcelCommandHandler struct {
	uowFactory UoWFactory
	jobQueue   ports.JobQueue
	estimator  services.RouteEstimator
	matcher    services.DriverMatcher
}

// NewDispatchParcelCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory for cross-aggregate transactions and the job queue for
// route recalculation.
func NewDispatchParcelCommandHandler(
	uowFactory UoWFactory,
	jobQueue ports.JobQueue,
) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
		jobQueue:   jobQueue,
		estimator:  services.NewRouteEstimator(),
		matcher:    services.NewDriverMatcher(),
	}
}

// Handle processes the dispatch command.
// Returns an ObjectNotFoundError for an unknown parcel, an InvalidStateError
// when the parcel is not Pending, and services.ErrNoDriverAvailable when no
// driver in the zone can be claimed.
func (h DispatchParcelCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchParcelCommand,
) (DispatchParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	driverRepo := uow.DriverRepository()
	deliveryRepo := uow.DeliveryRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return DispatchParcelResult{}, err
	}

	if p.Status() != parcel.Pending {
		return DispatchParcelResult{}, errs.NewInvalidStateError("parcel", p.Status().String(), "dispatch")
	}

	candidates, err := driverRepo.GetAvailableInZone(ctx, p.ZoneID())
	if err != nil {
		return DispatchParcelResult{}, err
	}

	assigned, err := h.claimBestCandidate(ctx, driverRepo, p, candidates)
	if err != nil {
		return DispatchParcelResult{}, err
	}

	route, err := h.estimator.PlanRoute(p.Pickup(), p.Dropoff())
	if err != nil {
		return DispatchParcelResult{}, err
	}
	serializedRoute, err := route.Marshal()
	if err != nil {
		return DispatchParcelResult{}, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), p.ID(), assigned.ID(), serializedRoute, time.Now().UTC())
	if err != nil {
		return DispatchParcelResult{}, err
	}

	if err = p.Assign(assigned.ID()); err != nil {
		return DispatchParcelResult{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return DispatchParcelResult{}, err
	}
	if err = driverRepo.Update(ctx, assigned); err != nil {
		return DispatchParcelResult{}, err
	}
	if err = deliveryRepo.Add(ctx, d); err != nil {
		return DispatchParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchParcelResult{}, err
	}

	payload := RouteCalculationPayload{
		DeliveryID:  d.ID().String(),
		PickupLat:   p.Pickup().Lat(),
		PickupLng:   p.Pickup().Lng(),
		DeliveryLat: p.Dropoff().Lat(),
		DeliveryLng: p.Dropoff().Lng(),
	}
	if _, err = h.jobQueue.Enqueue(ctx, ports.RouteCalculationQueue, CalculateRouteJobName, payload); err != nil {
		return DispatchParcelResult{}, err
	}

	return DispatchParcelResult{Delivery: d, Driver: assigned}, nil
}

// claimBestCandidate walks the candidate list best-first until a conditional
// claim succeeds. A lost claim means another dispatcher took that driver
// between the read and the update; the candidate is dropped and matching
// repeats on the remainder.
func (h DispatchParcelCommandHandler) claimBestCandidate(
	ctx context.Context,
	driverRepo ports.DriverRepository,
	p *parcel.Parcel,
	candidates []*driver.Driver,
) (*driver.Driver, error) {
	for len(candidates) > 0 {
		best, err := h.matcher.Match(p, candidates)
		if err != nil {
			return nil, err
		}

		claimed, err := driverRepo.ClaimAvailable(ctx, best.ID())
		if err != nil {
			return nil, err
		}
		if claimed {
			if err = best.Claim(); err != nil {
				return nil, err
			}
			return best, nil
		}

		remaining := make([]*driver.Driver, 0, len(candidates)-1)
		for _, candidate := range candidates {
			if !candidate.IsEqual(best) {
				remaining = append(remaining, candidate)
			}
		}
		candidates = remaining
	}

	return nil, services.ErrNoDriverAvailable
}
