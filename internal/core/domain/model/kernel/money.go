package kernel

import (
	"fmt"

	"orderstate/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable value object representing a monetary amount with
// two-decimal currency semantics. It wraps github.com/shopspring/decimal to
// avoid binary floating point drift when totals are summed repeatedly.
//
// The zero value of Money is a valid amount of zero. This is deliberate:
// monetary totals are built by summing over collections, and an empty
// collection must sum to zero without any special casing.
//
// Comparisons that drive business classification must be performed on
// cent-rounded values via RoundToCents. The rounding rule is round half away
// from zero (decimal.Round), applied consistently everywhere amounts are
// compared.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("19.99")
//	if err != nil {
//	    // handle parse error
//	}
//	total := price.Add(kernel.NewMoneyFromFloat(5.0))
//	fmt.Println(total) // 24.99
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero. Identity element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromDecimal creates a Money from a decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Intended for literals in tests and fixtures; prefer NewMoneyFromString
// for values that arrive as text.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromString parses a Money from its decimal string representation.
// Returns an error if the string is not a valid decimal number.
//
// Example:
//
//	m, err := kernel.NewMoneyFromString("110.00")
//	if err != nil {
//	    return fmt.Errorf("invalid amount: %w", err)
//	}
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal number", s))
	}
	return Money{amount: amount}, nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// RoundToCents returns the amount rounded to the nearest cent.
// The rounding rule is round half away from zero: 0.005 rounds to 0.01
// and -0.005 rounds to -0.01.
func (m Money) RoundToCents() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsEqual reports whether two amounts are numerically equal.
// Trailing zeroes are not significant: 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the amount formatted with exactly two decimal places.
// Implements fmt.Stringer for logging and display.
//
// Example:
//
//	m := kernel.NewMoneyFromFloat(7.5)
//	fmt.Println(m.String()) // "7.50"
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
