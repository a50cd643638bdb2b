package order

import (
	"errors"
	"fmt"
	"time"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// PaymentStatus represents the processing state of an individual payment.
// Only completed payments contribute to an order's payment total; the most
// recently added payment's status drives failure classification.
type PaymentStatus int

const (
	// PaymentStatusPending indicates the payment is awaiting gateway processing.
	PaymentStatusPending PaymentStatus = iota

	// PaymentStatusCompleted indicates the payment was captured successfully.
	PaymentStatusCompleted

	// PaymentStatusFailed indicates the gateway rejected the payment.
	PaymentStatusFailed

	// PaymentStatusVoid indicates the payment was voided before capture.
	PaymentStatusVoid
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their
// string representations used for persistence and display.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusPending:   "pending",
		PaymentStatusCompleted: "completed",
		PaymentStatusFailed:    "failed",
		PaymentStatusVoid:      "void",
	}
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// PaymentStatusFromString parses a persisted payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusPending, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Payment is a child record of an order representing a single payment attempt.
// Payments are created and persisted by an external collaborator; this model
// only reads their current snapshot during recalculation.
//
// Payments are ordered by creation time; the last payment in an order's
// collection is the most recently added one.
type Payment struct {
	id        kernel.UUID
	amount    kernel.Money
	status    PaymentStatus
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a payment with the current time as its creation time.
// The amount may be any decimal value, including zero.
func NewPayment(id kernel.UUID, amount kernel.Money, status PaymentStatus) (*Payment, error) {
	return RestorePayment(id, amount, status, time.Now().UTC())
}

// RestorePayment recreates a payment from persistence.
func RestorePayment(id kernel.UUID, amount kernel.Money, status PaymentStatus, createdAt time.Time) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the payment's processing status.
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// CreatedAt returns when the payment was added to the order.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// IsCompleted reports whether the payment was captured successfully.
func (p *Payment) IsCompleted() bool {
	return p.status == PaymentStatusCompleted
}

// IsFailed reports whether the gateway rejected the payment.
func (p *Payment) IsFailed() bool {
	return p.status == PaymentStatusFailed
}
