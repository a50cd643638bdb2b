package commands

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand represents a request to attach a payment attempt to an
// order. The payment carries its own status; only completed payments count
// toward the order's payment total.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID kernel.UUID
	amount    kernel.Money
	status    order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment against an order.
// Validates identifiers and the payment status.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	paymentID kernel.UUID,
	amount kernel.Money,
	status order.PaymentStatus,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RecordPaymentCommand{}, err
	}
	if err := cmd.setPaymentID(paymentID); err != nil {
		return RecordPaymentCommand{}, err
	}
	if err := cmd.setStatus(status); err != nil {
		return RecordPaymentCommand{}, err
	}
	cmd.amount = amount

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the payment.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the identifier for the new payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the monetary amount of the payment.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Status returns the lifecycle status reported for the payment attempt.
func (c RecordPaymentCommand) Status() order.PaymentStatus {
	return c.status
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
