package commands

import (
	"context"

	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/core/ports"
)

// AddShipmentCommandHandler attaches a shipment to an order and recalculates
// the order's derived state inside the same transaction, so the shipment
// total and shipment state pick up the new record immediately.
type AddShipmentCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewAddShipmentCommandHandler creates a handler for shipment addition.
func NewAddShipmentCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) AddShipmentCommandHandler {
	return AddShipmentCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the shipment addition command.
func (h AddShipmentCommandHandler) Handle(ctx context.Context, cmd AddShipmentCommand) error {
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

	shipment, err := order.NewShipment(cmd.ShipmentID(), cmd.Cost())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, cmd.OrderID(), shipment); err != nil {
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
