package queries

import (
	"context"

	"logistima/internal/core/ports"
)

// GetFailedJobsQueryHandler retrieves dead-lettered jobs from the job queue.
// Unlike the other queries this one reads queue storage, not the database;
// failed jobs never touch postgres.
type GetFailedJobsQueryHandler struct {
	jobQueue ports.JobQueue
}

// NewGetFailedJobsQueryHandler creates a handler for dead-letter inspection.
func NewGetFailedJobsQueryHandler(jobQueue ports.JobQueue) GetFailedJobsQueryHandler {
	return GetFailedJobsQueryHandler{jobQueue: jobQueue}
}

// Handle executes the query and returns dead letters, most recent first.
func (h GetFailedJobsQueryHandler) Handle(
	ctx context.Context,
	query GetFailedJobsQuery,
) ([]ports.FailedJob, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.jobQueue.FailedJobs(ctx, query.Queue(), query.Limit())
}
