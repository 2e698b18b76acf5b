package commands

import (
	"context"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/services"
)

// RecalculateRouteCommandHandler recomputes and stores a delivery's route
// estimate. Storing the same route twice changes nothing, so the enclosing
// job may be retried safely.
type RecalculateRouteCommandHandler struct {
	uowFactory DeliveryUoWFactory
	estimator  services.RouteEstimator
}

// NewRecalculateRouteCommandHandler creates a handler for route recalculation.
func NewRecalculateRouteCommandHandler(uowFactory DeliveryUoWFactory) RecalculateRouteCommandHandler {
	return RecalculateRouteCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewRouteEstimator(),
	}
}

// Handle processes the route recalculation command.
// Returns an ObjectNotFoundError for an unknown delivery so the job layer can
// retry; the delivery may not be visible yet if the job raced its transaction.
func (h RecalculateRouteCommandHandler) Handle(ctx context.Context, cmd RecalculateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pickup, err := kernel.NewGeoPoint(cmd.PickupLat(), cmd.PickupLng())
	if err != nil {
		return err
	}
	dropoff, err := kernel.NewGeoPoint(cmd.DeliveryLat(), cmd.DeliveryLng())
	if err != nil {
		return err
	}

	route, err := h.estimator.PlanRoute(pickup, dropoff)
	if err != nil {
		return err
	}
	serializedRoute, err := route.Marshal()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.SetEstimatedRoute(serializedRoute); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
