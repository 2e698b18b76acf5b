package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"logistima/internal/adapters/out/redisqueue"
	"logistima/internal/core/application/usecases/commands"
	"logistima/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// RouteCalculationJob consumes the route calculation queue and recomputes
// delivery route estimates from the coordinates snapshotted at dispatch.
type RouteCalculationJob struct {
	handler commands.RecalculateRouteCommandHandler
	worker  *redisqueue.Worker
	logger  *slog.Logger
}

// NewRouteCalculationJob creates the route calculation consumer.
func NewRouteCalculationJob(
	client *redis.Client,
	config redisqueue.QueueConfig,
	handler commands.RecalculateRouteCommandHandler,
	logger *slog.Logger,
) *RouteCalculationJob {
	j := &RouteCalculationJob{
		handler: handler,
		logger:  logger.With("component", "route_calculation_job"),
	}
	j.worker = redisqueue.NewWorker(client, config, j.handle, logger)
	return j
}

// Start begins consuming the route calculation queue.
func (j *RouteCalculationJob) Start() error {
	if err := j.worker.Start(); err != nil {
		return err
	}
	j.logger.Info("route calculation job started")
	return nil
}

// Stop drains in-flight jobs and halts the consumer.
func (j *RouteCalculationJob) Stop() {
	j.worker.Stop()
	j.logger.Info("route calculation job stopped")
}

func (j *RouteCalculationJob) handle(ctx context.Context, job redisqueue.Job) error {
	var payload commands.RouteCalculationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("decode route calculation payload: %w", err)
	}

	deliveryID, err := kernel.UUIDFromString(payload.DeliveryID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecalculateRouteCommand(
		deliveryID,
		payload.PickupLat,
		payload.PickupLng,
		payload.DeliveryLat,
		payload.DeliveryLng,
	)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}
