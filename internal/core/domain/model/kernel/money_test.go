package kernel_test

import (
	"testing"

	"orderstate/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroMoney(t *testing.T) {
	t.Run("should be zero", func(t *testing.T) {
		m := kernel.ZeroMoney()

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should equal zero value Money", func(t *testing.T) {
		var zero kernel.Money

		assert.True(t, zero.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should be identity for Add", func(t *testing.T) {
		m := kernel.NewMoneyFromFloat(42.15)

		assert.True(t, m.IsEqual(m.Add(kernel.ZeroMoney())))
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("110.00")

		require.NoError(t, err)
		assert.Equal(t, "110.00", m.String())
	})

	t.Run("should parse negative amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("-5.25")

		require.NoError(t, err)
		assert.Equal(t, "-5.25", m.String())
	})

	t.Run("should fail on non-numeric string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(100.00)
		b := kernel.NewMoneyFromFloat(10.00)

		assert.Equal(t, "110.00", a.Add(b).String())
	})

	t.Run("should subtract amounts", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(100.00)
		b := kernel.NewMoneyFromFloat(10.50)

		assert.Equal(t, "89.50", a.Sub(b).String())
	})

	t.Run("should not drift when summing many cents", func(t *testing.T) {
		sum := kernel.ZeroMoney()
		cent := kernel.NewMoneyFromFloat(0.01)
		for range 100 {
			sum = sum.Add(cent)
		}

		assert.True(t, sum.IsEqual(kernel.NewMoneyFromFloat(1.00)))
	})
}

func TestMoney_RoundToCents(t *testing.T) {
	t.Run("should round half away from zero", func(t *testing.T) {
		m := kernel.NewMoneyFromDecimal(decimal.RequireFromString("10.005"))

		assert.Equal(t, "10.01", m.RoundToCents().String())
	})

	t.Run("should round negative half away from zero", func(t *testing.T) {
		m := kernel.NewMoneyFromDecimal(decimal.RequireFromString("-10.005"))

		assert.Equal(t, "-10.01", m.RoundToCents().String())
	})

	t.Run("should leave exact cents unchanged", func(t *testing.T) {
		m := kernel.NewMoneyFromFloat(10.01)

		assert.True(t, m.IsEqual(m.RoundToCents()))
	})

	t.Run("should round down below half a cent", func(t *testing.T) {
		m := kernel.NewMoneyFromDecimal(decimal.RequireFromString("10.0049"))

		assert.Equal(t, "10.00", m.RoundToCents().String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("should compare regardless of precision", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("1.5")
		b, _ := kernel.NewMoneyFromString("1.50")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should report less than", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(50.00)
		b := kernel.NewMoneyFromFloat(110.00)

		assert.True(t, a.LessThan(b))
		assert.False(t, b.LessThan(a))
	})

	t.Run("should report greater than", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(150.00)
		b := kernel.NewMoneyFromFloat(110.00)

		assert.True(t, a.GreaterThan(b))
		assert.False(t, b.GreaterThan(a))
	})
}
