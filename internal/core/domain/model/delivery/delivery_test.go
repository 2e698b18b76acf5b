package delivery_test

import (
	"testing"
	"time"

	"logistima/internal/core/domain/model/delivery"
	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		`{"distanceKm":2.04,"etaMinutes":5}`, time.Now())
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates_assigned_delivery", func(t *testing.T) {
		d := validDelivery(t)

		assert.Equal(t, delivery.Assigned, d.Status())
		assert.False(t, d.ReceiptGenerated())
		assert.Nil(t, d.CompletedAt())
		assert.False(t, d.StartedAt().IsZero())
		require.NoError(t, d.Validate())
	})

	t.Run("zero_started_at_fails", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Time{})

		require.Error(t, err)
	})
}

func TestDelivery_MarkPickedUp(t *testing.T) {
	t.Run("assigned_becomes_picked_up", func(t *testing.T) {
		d := validDelivery(t)

		err := d.MarkPickedUp()

		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, d.Status())
	})

	t.Run("second_pickup_fails", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		err := d.MarkPickedUp()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered_cannot_be_picked_up", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.Complete(time.Now()))

		err := d.MarkPickedUp()

		require.Error(t, err)
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("sets_status_and_completed_at", func(t *testing.T) {
		// Given
		d := validDelivery(t)
		completedAt := time.Now()

		// When
		err := d.Complete(completedAt)

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.CompletedAt())
		assert.Equal(t, completedAt, *d.CompletedAt())
	})

	t.Run("completion_without_pickup_is_allowed", func(t *testing.T) {
		d := validDelivery(t)

		err := d.Complete(time.Now())

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("second_completion_returns_already_delivered", func(t *testing.T) {
		// Given
		d := validDelivery(t)
		first := time.Now()
		require.NoError(t, d.Complete(first))

		// When
		err := d.Complete(time.Now().Add(time.Minute))

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrAlreadyDelivered)
		assert.Equal(t, first, *d.CompletedAt())
	})
}

func TestDelivery_Fail(t *testing.T) {
	t.Run("assigned_delivery_fails_with_reason", func(t *testing.T) {
		d := validDelivery(t)

		err := d.Fail("recipient unreachable")

		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, "recipient unreachable", d.FailureReason())
		assert.Nil(t, d.CompletedAt())
	})

	t.Run("empty_reason_is_allowed", func(t *testing.T) {
		d := validDelivery(t)

		err := d.Fail("")

		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Empty(t, d.FailureReason())
	})

	t.Run("picked_up_delivery_fails", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.MarkPickedUp())

		err := d.Fail("vehicle breakdown")

		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("terminal_delivery_cannot_fail", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.Fail("first reason"))

		err := d.Fail("second reason")

		require.Error(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, "first reason", d.FailureReason())
	})

	t.Run("failed_delivery_cannot_be_completed", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.Fail("recipient unreachable"))

		err := d.Complete(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Nil(t, d.CompletedAt())
	})
}

func TestDelivery_SetEstimatedRoute(t *testing.T) {
	t.Run("replaces_route", func(t *testing.T) {
		d := validDelivery(t)
		refined := `{"distanceKm":2.11,"etaMinutes":6}`

		err := d.SetEstimatedRoute(refined)

		require.NoError(t, err)
		assert.Equal(t, refined, d.EstimatedRoute())
	})

	t.Run("storing_same_route_twice_is_stable", func(t *testing.T) {
		d := validDelivery(t)
		route := `{"distanceKm":2.11,"etaMinutes":6}`

		require.NoError(t, d.SetEstimatedRoute(route))
		require.NoError(t, d.SetEstimatedRoute(route))

		assert.Equal(t, route, d.EstimatedRoute())
	})

	t.Run("empty_route_is_rejected", func(t *testing.T) {
		d := validDelivery(t)

		err := d.SetEstimatedRoute("")

		require.Error(t, err)
	})
}

func TestDelivery_MarkReceiptGenerated(t *testing.T) {
	t.Run("flag_is_sticky_and_idempotent", func(t *testing.T) {
		d := validDelivery(t)

		require.NoError(t, d.MarkReceiptGenerated())
		require.NoError(t, d.MarkReceiptGenerated())

		assert.True(t, d.ReceiptGenerated())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_completed_delivery", func(t *testing.T) {
		startedAt := time.Now().Add(-time.Hour)
		completedAt := time.Now()

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.Delivered, `{"distanceKm":2.04}`, true, "", startedAt, &completedAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.True(t, d.ReceiptGenerated())
		require.NotNil(t, d.CompletedAt())
	})

	t.Run("restores_failure_reason", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.Failed, "", false, "address not found", time.Now().Add(-time.Hour), nil)

		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, "address not found", d.FailureReason())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.Unknown, "", false, "", time.Now(), nil)

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, delivery.Assigned.IsTerminal())
	assert.False(t, delivery.PickedUp.IsTerminal())
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Failed.IsTerminal())
}
