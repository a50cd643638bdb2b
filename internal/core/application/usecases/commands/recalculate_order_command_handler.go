package commands

import (
	"context"

	"orderstate/internal/core/ports"
)

// RecalculateOrderCommandHandler re-derives an order's totals and states from
// its persisted children. The only writes it performs are the raw derived
// state flush and any shipment self-update transitions; nothing else changes.
type RecalculateOrderCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewRecalculateOrderCommandHandler creates a handler for manual and
// scheduled recalculation.
func NewRecalculateOrderCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) RecalculateOrderCommandHandler {
	return RecalculateOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the recalculation command.
func (h RecalculateOrderCommandHandler) Handle(ctx context.Context, cmd RecalculateOrderCommand) error {
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

	if err = recalculateOrder(ctx, uow, h.sink, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
