package queries

import (
	"errors"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/ports"
)

const defaultFailedJobsLimit = 50

var (
	ErrGetFailedJobsQueryIsNotConstructed = errors.New(
		"GetFailedJobsQuery must be created via NewGetFailedJobsQuery constructor",
	)
	ErrQueueNameIsRequired = errors.New("queue name is required")
	ErrUnknownQueueName    = errors.New("unknown queue name")
)

// GetFailedJobsQuery retrieves dead-lettered jobs from one background queue
// for operator inspection.
type GetFailedJobsQuery struct { //nolint:recvcheck //using for validation
	queue string
	limit int

	guard kernel.ConstructorGuard
}

// NewGetFailedJobsQuery creates a query for the named queue's dead letters.
// A non-positive limit falls back to the default of 50 entries.
func NewGetFailedJobsQuery(queue string, limit int) (GetFailedJobsQuery, error) {
	q := GetFailedJobsQuery{
		limit: limit,
		guard: kernel.NewConstructorGuard(),
	}

	if q.limit <= 0 {
		q.limit = defaultFailedJobsLimit
	}

	if err := q.setQueue(queue); err != nil {
		return GetFailedJobsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFailedJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetFailedJobsQueryIsNotConstructed)
}

// Queue returns the queue name to inspect.
func (q GetFailedJobsQuery) Queue() string {
	return q.queue
}

// Limit returns the maximum number of entries to return.
func (q GetFailedJobsQuery) Limit() int {
	return q.limit
}

func (q *GetFailedJobsQuery) setQueue(queue string) error {
	if queue == "" {
		return ErrQueueNameIsRequired
	}
	if queue != ports.RouteCalculationQueue && queue != ports.ReceiptGenerationQueue {
		return ErrUnknownQueueName
	}

	q.queue = queue
	return nil
}
