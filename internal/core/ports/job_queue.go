package ports

import (
	"context"
	"encoding/json"
	"time"
)

// Queue names used by the dispatch workflow.
const (
	// RouteCalculationQueue carries jobs that recalculate a delivery's route
	// estimate after dispatch.
	RouteCalculationQueue = "route-calculation"

	// ReceiptGenerationQueue carries jobs that produce the customer receipt
	// after a delivery completes.
	ReceiptGenerationQueue = "receipt-generation"
)

// FailedJob is a dead-lettered job kept for inspection after its retries are
// exhausted.
type FailedJob struct {
	ID          string          `json:"id"`
	Queue       string          `json:"queue"`
	Name        string          `json:"name"`
	Payload     json.RawMessage `json:"payload"`
	Attempt     int             `json:"attempt"`
	MaxAttempts int             `json:"maxAttempts"`
	Error       string          `json:"error"`
	FailedAt    time.Time       `json:"failedAt"`
}

// JobQueue defines the contract for handing work to background workers.
// Enqueue is fire-and-forget from the caller's perspective: retries, backoff,
// and dead-lettering are the queue's responsibility.
type JobQueue interface {
	// Enqueue places a job on the named queue and returns its job ID.
	// The payload is serialized to JSON.
	Enqueue(ctx context.Context, queue string, name string, payload any) (string, error)

	// FailedJobs returns up to limit dead-lettered jobs from the named queue,
	// most recent first.
	FailedJobs(ctx context.Context, queue string, limit int) ([]FailedJob, error)
}
