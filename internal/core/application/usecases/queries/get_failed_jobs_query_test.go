package queries_test

import (
	"context"
	"testing"

	"logistima/internal/core/application/usecases/queries"
	"logistima/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFailedJobsQueue struct{ mock.Mock }

func (m *MockFailedJobsQueue) Enqueue(
	ctx context.Context, queue string, name string, payload any,
) (string, error) {
	args := m.Called(ctx, queue, name, payload)
	return args.String(0), args.Error(1)
}

func (m *MockFailedJobsQueue) FailedJobs(
	ctx context.Context, queue string, limit int,
) ([]ports.FailedJob, error) {
	args := m.Called(ctx, queue, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.FailedJob), args.Error(1)
}

func TestNewGetFailedJobsQuery(t *testing.T) {
	t.Run("valid_queue", func(t *testing.T) {
		query, err := queries.NewGetFailedJobsQuery(ports.RouteCalculationQueue, 10)
		require.NoError(t, err)
		assert.Equal(t, ports.RouteCalculationQueue, query.Queue())
		assert.Equal(t, 10, query.Limit())
	})

	t.Run("non_positive_limit_defaults", func(t *testing.T) {
		query, err := queries.NewGetFailedJobsQuery(ports.ReceiptGenerationQueue, 0)
		require.NoError(t, err)
		assert.Equal(t, 50, query.Limit())
	})

	t.Run("empty_queue_is_rejected", func(t *testing.T) {
		_, err := queries.NewGetFailedJobsQuery("", 10)
		assert.ErrorIs(t, err, queries.ErrQueueNameIsRequired)
	})

	t.Run("unknown_queue_is_rejected", func(t *testing.T) {
		_, err := queries.NewGetFailedJobsQuery("payments", 10)
		assert.ErrorIs(t, err, queries.ErrUnknownQueueName)
	})

	t.Run("zero_value_query_fails_validation", func(t *testing.T) {
		var query queries.GetFailedJobsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetFailedJobsQueryIsNotConstructed)
	})
}

func TestGetFailedJobsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	query, err := queries.NewGetFailedJobsQuery(ports.RouteCalculationQueue, 5)
	require.NoError(t, err)

	deadLetters := []ports.FailedJob{
		{ID: "job-1", Queue: ports.RouteCalculationQueue, Name: "calculate-route", Attempt: 3, MaxAttempts: 3},
	}

	jobQueue := new(MockFailedJobsQueue)
	jobQueue.On("FailedJobs", ctx, ports.RouteCalculationQueue, 5).Return(deadLetters, nil).Once()

	handler := queries.NewGetFailedJobsQueryHandler(jobQueue)
	got, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, deadLetters, got)
	jobQueue.AssertExpectations(t)
}
