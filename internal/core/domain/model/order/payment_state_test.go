package order_test

import (
	"testing"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentState(t *testing.T) {
	t.Run("should accept unset as a valid persisted value", func(t *testing.T) {
		require.NoError(t, order.PaymentStateUnset.Validate())
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.PaymentState(99).Validate())
	})

	t.Run("should round-trip through names", func(t *testing.T) {
		for _, state := range []order.PaymentState{
			order.PaymentStateUnset,
			order.PaymentStateBalanceDue,
			order.PaymentStatePaid,
			order.PaymentStateCreditOwed,
			order.PaymentStateFailed,
		} {
			parsed, err := order.PaymentStateFromString(state.String())
			require.NoError(t, err)
			assert.Equal(t, state, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.PaymentStateFromString("overpaid")

		require.Error(t, err)
	})
}

func TestShipmentState(t *testing.T) {
	t.Run("should accept unset as a valid terminal value", func(t *testing.T) {
		require.NoError(t, order.ShipmentStateUnset.Validate())
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.ShipmentState(99).Validate())
	})

	t.Run("should round-trip through names", func(t *testing.T) {
		for _, state := range []order.ShipmentState{
			order.ShipmentStateUnset,
			order.ShipmentStateBackorder,
			order.ShipmentStatePartial,
			order.ShipmentStatePending,
			order.ShipmentStateReady,
			order.ShipmentStateShipped,
		} {
			parsed, err := order.ShipmentStateFromString(state.String())
			require.NoError(t, err)
			assert.Equal(t, state, parsed)
		}
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should identify completed and failed payments", func(t *testing.T) {
		completed, _ := order.NewPayment(kernel.NewUUID(), kernel.NewMoneyFromFloat(110.00), order.PaymentStatusCompleted)
		failed, _ := order.NewPayment(kernel.NewUUID(), kernel.NewMoneyFromFloat(110.00), order.PaymentStatusFailed)

		assert.True(t, completed.IsCompleted())
		assert.False(t, completed.IsFailed())
		assert.True(t, failed.IsFailed())
		assert.False(t, failed.IsCompleted())
	})

	t.Run("should round-trip through names", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{
			order.PaymentStatusPending,
			order.PaymentStatusCompleted,
			order.PaymentStatusFailed,
			order.PaymentStatusVoid,
		} {
			parsed, err := order.PaymentStatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}
