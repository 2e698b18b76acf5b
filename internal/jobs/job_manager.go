package jobs

import (
	"fmt"
	"log/slog"

	"logistima/internal/adapters/out/redisqueue"
	"logistima/internal/core/application/usecases/commands"

	"github.com/redis/go-redis/v9"
)

// JobManager coordinates all queue consumers in the worker process.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeCalculationJob  *RouteCalculationJob
	receiptGenerationJob *ReceiptGenerationJob
}

// NewJobManager creates a job manager with all required queue consumers.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	client *redis.Client,
	recalculateRouteHandler commands.RecalculateRouteCommandHandler,
	generateReceiptHandler commands.GenerateReceiptCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeCalculationJob: NewRouteCalculationJob(
			client, redisqueue.RouteCalculationConfig(), recalculateRouteHandler, logger),
		receiptGenerationJob: NewReceiptGenerationJob(
			client, redisqueue.ReceiptGenerationConfig(), generateReceiptHandler, logger),
	}
}

// StartAll starts all queue consumers.
// Returns an error if any consumer fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeCalculationJob.Start(); err != nil {
		return fmt.Errorf("failed to start route calculation job: %w", err)
	}

	if err := jm.receiptGenerationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.routeCalculationJob.Stop()
		return fmt.Errorf("failed to start receipt generation job: %w", err)
	}

	return nil
}

// StopAll stops all queue consumers gracefully.
func (jm *JobManager) StopAll() {
	jm.routeCalculationJob.Stop()
	jm.receiptGenerationJob.Stop()
}
