package commands

import (
	"context"

	"orderstate/internal/core/ports"
)

// CompleteOrderCommandHandler moves an order into the completed phase and
// immediately recalculates so the payment and shipment states classify for
// the first time.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the order completion command.
// Marks the order completed, persists the lifecycle change through the
// normal repository path, then recalculates so derived states classify.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.MarkCompleted(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
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
