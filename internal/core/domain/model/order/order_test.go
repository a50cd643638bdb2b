package order_test

import (
	"errors"
	"testing"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with zero totals and unset states", func(t *testing.T) {
		o, err := order.NewOrder(validID)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.False(t, o.Completed())
		assert.False(t, o.Backordered())
		assert.True(t, o.Total().IsZero())
		assert.True(t, o.PaymentTotal().IsZero())
		assert.Equal(t, order.PaymentStateUnset, o.PaymentState())
		assert.Equal(t, order.ShipmentStateUnset, o.ShipmentState())
		assert.Empty(t, o.Hooks())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore persisted snapshot", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, true, false,
			kernel.NewMoneyFromFloat(100.00),
			kernel.NewMoneyFromFloat(10.00),
			kernel.NewMoneyFromFloat(-5.00),
			kernel.NewMoneyFromFloat(105.00),
			order.PaymentStatePaid, order.ShipmentStateReady)

		require.NoError(t, err)
		assert.True(t, o.Completed())
		assert.Equal(t, "105.00", o.Total().String())
		assert.Equal(t, order.PaymentStatePaid, o.PaymentState())
		assert.Equal(t, order.ShipmentStateReady, o.ShipmentState())
	})

	t.Run("should recompute total from component totals", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, false, false,
			kernel.NewMoneyFromFloat(50.00),
			kernel.NewMoneyFromFloat(5.00),
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			order.PaymentStateUnset, order.ShipmentStateUnset)

		require.NoError(t, err)
		assert.Equal(t, "55.00", o.Total().String())
	})

	t.Run("should fail with invalid payment state", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, false, false,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
			order.PaymentState(42), order.ShipmentStateUnset)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "payment state is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_UpdateTotals(t *testing.T) {
	t.Run("should derive total from component totals", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.UpdateTotals(
			kernel.NewMoneyFromFloat(100.00),
			kernel.NewMoneyFromFloat(10.00),
			kernel.NewMoneyFromFloat(-2.50),
			kernel.NewMoneyFromFloat(107.50),
		)

		assert.Equal(t, "100.00", o.ItemTotal().String())
		assert.Equal(t, "10.00", o.ShipmentTotal().String())
		assert.Equal(t, "-2.50", o.AdjustmentTotal().String())
		assert.Equal(t, "107.50", o.PaymentTotal().String())
		assert.Equal(t, "107.50", o.Total().String())
	})

	t.Run("should always satisfy additivity", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.UpdateTotals(
			kernel.NewMoneyFromFloat(33.33),
			kernel.NewMoneyFromFloat(4.99),
			kernel.NewMoneyFromFloat(-0.01),
			kernel.ZeroMoney(),
		)

		expected := o.ItemTotal().Add(o.ShipmentTotal()).Add(o.AdjustmentTotal())
		assert.True(t, o.Total().IsEqual(expected))
	})
}

func TestOrder_MarkCompleted(t *testing.T) {
	t.Run("should complete order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		require.NoError(t, o.MarkCompleted())

		assert.True(t, o.Completed())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		require.NoError(t, o.MarkCompleted())
		require.NoError(t, o.MarkCompleted())

		assert.True(t, o.Completed())
	})

	t.Run("should fail for unconstructed order", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.MarkCompleted())
	})
}

func TestOrder_StateChanges(t *testing.T) {
	t.Run("should record change when payment state moves", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.ChangePaymentState(order.PaymentStateBalanceDue)

		changes := o.DrainStateChanges()
		require.Len(t, changes, 1)
		assert.Equal(t, order.StateDomainPayment, changes[0].Domain)
		assert.Equal(t, "unset", changes[0].From)
		assert.Equal(t, "balance_due", changes[0].To)
	})

	t.Run("should not record change when value is unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.ChangePaymentState(order.PaymentStateBalanceDue)
		o.DrainStateChanges()
		o.ChangePaymentState(order.PaymentStateBalanceDue)

		assert.Empty(t, o.DrainStateChanges())
	})

	t.Run("should record shipment change separately", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.ChangePaymentState(order.PaymentStatePaid)
		o.ChangeShipmentState(order.ShipmentStateReady)

		changes := o.DrainStateChanges()
		require.Len(t, changes, 2)
		assert.Equal(t, order.StateDomainPayment, changes[0].Domain)
		assert.Equal(t, order.StateDomainShipment, changes[1].Domain)
	})

	t.Run("should clear buffer on drain", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		o.ChangePaymentState(order.PaymentStatePaid)
		require.NotEmpty(t, o.DrainStateChanges())

		assert.Empty(t, o.DrainStateChanges())
	})
}

func TestOrder_Hooks(t *testing.T) {
	t.Run("should keep hooks in registration order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		var calls []int

		o.RegisterHook(func(*order.Order) error { calls = append(calls, 1); return nil })
		o.RegisterHook(func(*order.Order) error { calls = append(calls, 2); return nil })
		o.RegisterHook(func(*order.Order) error { calls = append(calls, 3); return nil })

		for _, hook := range o.Hooks() {
			require.NoError(t, hook(o))
		}

		assert.Equal(t, []int{1, 2, 3}, calls)
	})

	t.Run("should propagate hook errors", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		hookErr := errors.New("hook exploded")

		o.RegisterHook(func(*order.Order) error { return hookErr })

		require.ErrorIs(t, o.Hooks()[0](o), hookErr)
	})
}

func TestChildren_LastPayment(t *testing.T) {
	t.Run("should return nil when no payments", func(t *testing.T) {
		assert.Nil(t, order.Children{}.LastPayment())
	})

	t.Run("should return the most recently added payment", func(t *testing.T) {
		first, _ := order.NewPayment(kernel.NewUUID(), kernel.NewMoneyFromFloat(50.00), order.PaymentStatusCompleted)
		second, _ := order.NewPayment(kernel.NewUUID(), kernel.NewMoneyFromFloat(60.00), order.PaymentStatusFailed)
		children := order.Children{Payments: []*order.Payment{first, second}}

		last := children.LastPayment()

		require.NotNil(t, last)
		assert.True(t, last.ID().IsEqual(second.ID()))
		assert.True(t, last.IsFailed())
	})
}
