package services

import (
	"orderstate/internal/core/domain/model/order"
)

// PaymentStateClassifier derives an order's payment state from its monetary
// totals and payment history. It runs only for completed orders.
//
// Classification rules, evaluated in order on cent-rounded totals:
//  1. No line items, or payment total below order total: failed when the most
//     recently added payment failed, balance_due otherwise.
//  2. Payment total above order total: credit_owed.
//  3. Otherwise: paid.
//
// The no-line-items rule is a deliberate business rule, not an error case:
// an order with nothing on it owes a balance even at zero totals.
//
// Rounding uses round half away from zero (kernel.Money.RoundToCents),
// applied to both sides of every comparison.
type PaymentStateClassifier struct{}

// NewPaymentStateClassifier creates a new PaymentStateClassifier instance.
func NewPaymentStateClassifier() PaymentStateClassifier {
	return PaymentStateClassifier{}
}

// Classify sets the order's payment state from the current child snapshot.
// A state-change notification is recorded on the order when the value moves.
func (PaymentStateClassifier) Classify(o *order.Order, children order.Children) {
	paymentTotal := o.PaymentTotal().RoundToCents()
	total := o.Total().RoundToCents()

	switch {
	case len(children.LineItems) == 0 || paymentTotal.LessThan(total):
		if last := children.LastPayment(); last != nil && last.IsFailed() {
			o.ChangePaymentState(order.PaymentStateFailed)
		} else {
			o.ChangePaymentState(order.PaymentStateBalanceDue)
		}
	case paymentTotal.GreaterThan(total):
		o.ChangePaymentState(order.PaymentStateCreditOwed)
	default:
		o.ChangePaymentState(order.PaymentStatePaid)
	}
}
