package parcel_test

import (
	"strings"
	"testing"

	"logistima/internal/core/domain/model/kernel"
	"logistima/internal/core/domain/model/parcel"
	"logistima/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(33.5731, -7.5898)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(33.5892, -7.6031)
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		pickup, "12 Rue Ibn Batouta",
		dropoff, "88 Boulevard Zerktouni",
		2.5,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("creates_pending_parcel_with_tracking_code", func(t *testing.T) {
		p := validParcel(t)

		assert.Equal(t, parcel.Pending, p.Status())
		assert.Nil(t, p.Driver())
		assert.True(t, strings.HasPrefix(p.TrackingCode(), "TRK-"))
		assert.Len(t, p.TrackingCode(), len("TRK-")+8)
		require.NoError(t, p.Validate())
	})

	t.Run("tracking_codes_are_unique", func(t *testing.T) {
		a := validParcel(t)
		b := validParcel(t)

		assert.NotEqual(t, a.TrackingCode(), b.TrackingCode())
	})

	t.Run("rejects_invalid_arguments", func(t *testing.T) {
		pickup, err := kernel.NewGeoPoint(33.5731, -7.5898)
		require.NoError(t, err)
		dropoff, err := kernel.NewGeoPoint(33.5892, -7.6031)
		require.NoError(t, err)

		tests := []struct {
			name            string
			pickupAddress   string
			deliveryAddress string
			weight          float64
		}{
			{"empty_pickup_address", "", "88 Boulevard Zerktouni", 2.5},
			{"empty_delivery_address", "12 Rue Ibn Batouta", "", 2.5},
			{"zero_weight", "12 Rue Ibn Batouta", "88 Boulevard Zerktouni", 0},
			{"negative_weight", "12 Rue Ibn Batouta", "88 Boulevard Zerktouni", -1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parcel.NewParcel(
					kernel.NewUUID(), pickup, tt.pickupAddress, dropoff, tt.deliveryAddress,
					tt.weight, kernel.NewUUID())
				require.Error(t, err)
			})
		}
	})
}

func TestParcel_Assign(t *testing.T) {
	t.Run("pending_parcel_binds_driver", func(t *testing.T) {
		// Given
		p := validParcel(t)
		driverID := kernel.NewUUID()

		// When
		err := p.Assign(driverID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, parcel.Assigned, p.Status())
		require.NotNil(t, p.Driver())
		assert.True(t, p.Driver().IsEqual(driverID))
	})

	t.Run("assigned_parcel_cannot_be_dispatched_again", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		err := p.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestParcel_Lifecycle(t *testing.T) {
	t.Run("full_happy_path", func(t *testing.T) {
		p := validParcel(t)

		require.NoError(t, p.Assign(kernel.NewUUID()))
		require.NoError(t, p.MarkPickedUp())
		require.NoError(t, p.MarkDelivered())

		assert.Equal(t, parcel.Delivered, p.Status())
		assert.NotNil(t, p.Driver())
	})

	t.Run("delivery_without_pickup_is_allowed", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		err := p.MarkDelivered()

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("pickup_requires_assignment", func(t *testing.T) {
		p := validParcel(t)

		err := p.MarkPickedUp()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered_parcel_cannot_be_delivered_again", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))
		require.NoError(t, p.MarkDelivered())

		err := p.MarkDelivered()

		require.Error(t, err)
	})
}

func TestParcel_ResetToPending(t *testing.T) {
	t.Run("clears_driver_and_allows_redispatch", func(t *testing.T) {
		// Given
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		// When
		err := p.ResetToPending()

		// Then
		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, p.Status())
		assert.Nil(t, p.Driver())
		require.NoError(t, p.Assign(kernel.NewUUID()))
	})

	t.Run("delivered_parcel_cannot_be_reset", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))
		require.NoError(t, p.MarkDelivered())

		err := p.ResetToPending()

		require.Error(t, err)
	})
}

func TestParcel_Cancel(t *testing.T) {
	t.Run("pending_parcel_can_be_cancelled", func(t *testing.T) {
		p := validParcel(t)

		require.NoError(t, p.Cancel())
		assert.Equal(t, parcel.Cancelled, p.Status())
	})

	t.Run("assigned_parcel_cannot_be_cancelled", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		err := p.Cancel()

		require.Error(t, err)
	})
}

func TestRestoreParcel(t *testing.T) {
	pickup, err := kernel.NewGeoPoint(33.5731, -7.5898)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(33.5892, -7.6031)
	require.NoError(t, err)

	t.Run("restores_assigned_parcel", func(t *testing.T) {
		driverID := kernel.NewUUID()

		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), "TRK-AB12CD34", parcel.Assigned,
			pickup, "12 Rue Ibn Batouta", dropoff, "88 Boulevard Zerktouni",
			2.5, kernel.NewUUID(), &driverID)

		require.NoError(t, err)
		assert.Equal(t, "TRK-AB12CD34", p.TrackingCode())
		assert.Equal(t, parcel.Assigned, p.Status())
	})

	t.Run("assigned_without_driver_violates_invariant", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "TRK-AB12CD34", parcel.Assigned,
			pickup, "12 Rue Ibn Batouta", dropoff, "88 Boulevard Zerktouni",
			2.5, kernel.NewUUID(), nil)

		require.Error(t, err)
	})

	t.Run("pending_with_driver_violates_invariant", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "TRK-AB12CD34", parcel.Pending,
			pickup, "12 Rue Ibn Batouta", dropoff, "88 Boulevard Zerktouni",
			2.5, kernel.NewUUID(), &driverID)

		require.Error(t, err)
	})
}
