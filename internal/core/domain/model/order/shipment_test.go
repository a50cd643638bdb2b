package order_test

import (
	"testing"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), true, false,
		kernel.NewMoneyFromFloat(100.00),
		kernel.NewMoneyFromFloat(10.00),
		kernel.ZeroMoney(),
		kernel.NewMoneyFromFloat(110.00),
		order.PaymentStatePaid, order.ShipmentStateUnset)
	require.NoError(t, err)
	return o
}

func TestNewShipment(t *testing.T) {
	t.Run("should create pending shipment", func(t *testing.T) {
		s, err := order.NewShipment(kernel.NewUUID(), kernel.NewMoneyFromFloat(10.00))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, order.ShipmentStatusPending, s.Status())
		assert.Equal(t, "10.00", s.Cost().String())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := order.NewShipment(invalidID, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail validation for zero value shipment", func(t *testing.T) {
		var s order.Shipment

		assert.Equal(t, order.ErrShipmentIsNotConstructed, s.Validate())
	})
}

func TestShipment_Sync(t *testing.T) {
	t.Run("should become ready when order is completed and paid", func(t *testing.T) {
		o := completedPaidOrder(t)
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.NewMoneyFromFloat(10.00))

		require.NoError(t, s.Sync(o))

		assert.Equal(t, order.ShipmentStatusReady, s.Status())
	})

	t.Run("should stay pending when order is not paid", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), true, false,
			kernel.NewMoneyFromFloat(100.00), kernel.ZeroMoney(), kernel.ZeroMoney(),
			kernel.NewMoneyFromFloat(50.00),
			order.PaymentStateBalanceDue, order.ShipmentStateUnset)
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.ZeroMoney())

		require.NoError(t, s.Sync(o))

		assert.Equal(t, order.ShipmentStatusPending, s.Status())
	})

	t.Run("should fall back to pending when order is backordered", func(t *testing.T) {
		o := completedPaidOrder(t)
		require.NoError(t, o.SetBackordered(true))
		s, _ := order.RestoreShipment(kernel.NewUUID(), kernel.ZeroMoney(), order.ShipmentStatusReady)

		require.NoError(t, s.Sync(o))

		assert.Equal(t, order.ShipmentStatusPending, s.Status())
	})

	t.Run("should never leave shipped", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		s, _ := order.RestoreShipment(kernel.NewUUID(), kernel.ZeroMoney(), order.ShipmentStatusShipped)

		require.NoError(t, s.Sync(o))

		assert.Equal(t, order.ShipmentStatusShipped, s.Status())
	})

	t.Run("should be idempotent against unchanged order", func(t *testing.T) {
		o := completedPaidOrder(t)
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.ZeroMoney())

		require.NoError(t, s.Sync(o))
		first := s.Status()
		require.NoError(t, s.Sync(o))

		assert.Equal(t, first, s.Status())
	})

	t.Run("should fail for unconstructed order", func(t *testing.T) {
		var o order.Order
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.ZeroMoney())

		require.Error(t, s.Sync(&o))
	})
}

func TestShipment_MarkShipped(t *testing.T) {
	t.Run("should transition to shipped", func(t *testing.T) {
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.ZeroMoney())

		require.NoError(t, s.MarkShipped())

		assert.Equal(t, order.ShipmentStatusShipped, s.Status())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		s, _ := order.NewShipment(kernel.NewUUID(), kernel.ZeroMoney())

		require.NoError(t, s.MarkShipped())
		require.NoError(t, s.MarkShipped())

		assert.Equal(t, order.ShipmentStatusShipped, s.Status())
	})
}

func TestShipmentStatus_OrderState(t *testing.T) {
	t.Run("should map each status to its order-level state", func(t *testing.T) {
		assert.Equal(t, order.ShipmentStatePending, order.ShipmentStatusPending.OrderState())
		assert.Equal(t, order.ShipmentStateReady, order.ShipmentStatusReady.OrderState())
		assert.Equal(t, order.ShipmentStateShipped, order.ShipmentStatusShipped.OrderState())
	})
}
