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

// ReceiptGenerationJob consumes the receipt generation queue and assembles
// customer receipts for completed deliveries.
type ReceiptGenerationJob struct {
	handler commands.GenerateReceiptCommandHandler
	worker  *redisqueue.Worker
	logger  *slog.Logger
}

// NewReceiptGenerationJob creates the receipt generation consumer.
func NewReceiptGenerationJob(
	client *redis.Client,
	config redisqueue.QueueConfig,
	handler commands.GenerateReceiptCommandHandler,
	logger *slog.Logger,
) *ReceiptGenerationJob {
	j := &ReceiptGenerationJob{
		handler: handler,
		logger:  logger.With("component", "receipt_generation_job"),
	}
	j.worker = redisqueue.NewWorker(client, config, j.handle, logger)
	return j
}

// Start begins consuming the receipt generation queue.
func (j *ReceiptGenerationJob) Start() error {
	if err := j.worker.Start(); err != nil {
		return err
	}
	j.logger.Info("receipt generation job started")
	return nil
}

// Stop drains in-flight jobs and halts the consumer.
func (j *ReceiptGenerationJob) Stop() {
	j.worker.Stop()
	j.logger.Info("receipt generation job stopped")
}

func (j *ReceiptGenerationJob) handle(ctx context.Context, job redisqueue.Job) error {
	var payload commands.ReceiptGenerationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("decode receipt generation payload: %w", err)
	}

	deliveryID, err := kernel.UUIDFromString(payload.DeliveryID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateReceiptCommand(deliveryID)
	if err != nil {
		return err
	}

	receipt, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "receipt generated",
		"receipt_number", receipt.ReceiptNumber,
		"delivery_id", receipt.DeliveryID,
		"tracking_code", receipt.TrackingCode,
		"driver", receipt.DriverName,
	)
	return nil
}
