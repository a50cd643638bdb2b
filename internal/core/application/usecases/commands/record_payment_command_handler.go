package commands

import (
	"context"

	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/core/ports"
)

// RecordPaymentCommandHandler attaches a payment attempt to an order and
// recalculates the order's derived state inside the same transaction, so a
// completed payment immediately moves the payment total and payment state.
//
// Example:
//
//	handler := NewRecordPaymentCommandHandler(uowFactory, sink)
//	cmd, _ := NewRecordPaymentCommand(orderID, kernel.NewUUID(), amount, order.PaymentStatusCompleted)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record payment: %w", err)
//	}
type RecordPaymentCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
// The sink receives notifications for derived state transitions caused by
// the payment.
func NewRecordPaymentCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the payment recording command.
// Persists the payment, then reloads all children and runs recalculation so
// totals and states reflect the new payment before the transaction commits.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	payment, err := order.NewPayment(cmd.PaymentID(), cmd.Amount(), cmd.Status())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, cmd.OrderID(), payment); err != nil {
		return err
	}

	if err = recalculateOrder(ctx, uow, h.sink, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
