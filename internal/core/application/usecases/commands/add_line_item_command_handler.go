package commands

import (
	"context"

	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/core/ports"
)

// AddLineItemCommandHandler adds a line item and its adjustments to an order
// and recalculates the order's derived state inside the same transaction.
type AddLineItemCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewAddLineItemCommandHandler creates a handler for line item addition.
func NewAddLineItemCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the line item addition command.
// Persists the line item with its adjustments, then runs recalculation so the
// item and adjustment totals pick up the new records before commit.
func (h AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
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

	lineItem, err := order.NewLineItem(cmd.LineItemID(), cmd.Amount())
	if err != nil {
		return err
	}

	for _, input := range cmd.Adjustments() {
		adjustment, adjErr := order.NewAdjustment(input.ID, input.Amount, input.Eligible)
		if adjErr != nil {
			return adjErr
		}
		if err = lineItem.AddAdjustment(adjustment); err != nil {
			return err
		}
	}

	if err = uow.LineItemRepository().Add(ctx, cmd.OrderID(), lineItem); err != nil {
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
