package order

import (
	"fmt"

	"orderstate/internal/pkg/errs"
)

// PaymentState represents the derived payment status of an order.
// It is computed from the order's monetary totals and payment history and
// persisted as part of the order's derived state.
//
// Unlike a lifecycle state machine, PaymentState carries no transition rules:
// the classification algorithm may move an order between any two states as
// the underlying payments change. Unset is a valid persisted value for orders
// whose payment state has never been classified.
type PaymentState int

const (
	// PaymentStateUnset indicates the payment state has never been classified.
	// This value (0) is what uncompleted orders retain until completion.
	PaymentStateUnset PaymentState = iota

	// PaymentStateBalanceDue indicates completed payments cover less than the
	// order total, or the order has no line items at all.
	PaymentStateBalanceDue

	// PaymentStatePaid indicates completed payments exactly cover the order total.
	PaymentStatePaid

	// PaymentStateCreditOwed indicates completed payments exceed the order total.
	PaymentStateCreditOwed

	// PaymentStateFailed indicates the most recent payment attempt failed while
	// a balance is still outstanding.
	PaymentStateFailed
)

// getPaymentStateStrings returns a map of PaymentState values to their string
// representations used for persistence and display.
func getPaymentStateStrings() map[PaymentState]string {
	return map[PaymentState]string{
		PaymentStateUnset:      "unset",
		PaymentStateBalanceDue: "balance_due",
		PaymentStatePaid:       "paid",
		PaymentStateCreditOwed: "credit_owed",
		PaymentStateFailed:     "failed",
	}
}

// Validate checks if the PaymentState value is one of the defined states.
// Unset is valid: it is the persisted value of never-classified orders.
func (s PaymentState) Validate() error {
	if _, ok := getPaymentStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment state is invalid",
			fmt.Errorf("%d is not a valid payment state", s))
	}
	return nil
}

// String returns the persisted name of the payment state.
// Implements fmt.Stringer; returns "unset" for out-of-range values.
func (s PaymentState) String() string {
	if str, ok := getPaymentStateStrings()[s]; ok {
		return str
	}
	return "unset"
}

// PaymentStateFromString parses a persisted payment state name.
// Returns an error for unknown names.
func PaymentStateFromString(s string) (PaymentState, error) {
	for state, str := range getPaymentStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return PaymentStateUnset, errs.NewValueIsInvalidErrorWithCause("payment state is invalid",
		fmt.Errorf("%q is not a valid payment state", s))
}
