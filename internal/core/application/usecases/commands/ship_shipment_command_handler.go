package commands

import (
	"context"

	"orderstate/internal/core/ports"
	"orderstate/internal/pkg/errs"
)

// ShipShipmentCommandHandler marks a shipment as shipped and recalculates the
// order's derived state inside the same transaction. Shipping is a lifecycle
// write that goes through the order's normal recalculation, unlike the
// self-update transitions the engine applies on its own.
type ShipShipmentCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.StateChangeSink
}

// NewShipShipmentCommandHandler creates a handler for shipment dispatch.
func NewShipShipmentCommandHandler(uowFactory UoWFactory, sink ports.StateChangeSink) ShipShipmentCommandHandler {
	return ShipShipmentCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the shipment dispatch command.
// Loads the shipment by ID from the order's shipment collection, marks it
// shipped, persists it, and recalculates.
func (h ShipShipmentCommandHandler) Handle(ctx context.Context, cmd ShipShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	shipments, err := shipmentRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	found := false
	for _, shipment := range shipments {
		if !shipment.ID().IsEqual(cmd.ShipmentID()) {
			continue
		}
		if err = shipment.MarkShipped(); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, cmd.OrderID(), shipment); err != nil {
			return err
		}
		found = true
		break
	}
	if !found {
		return errs.NewObjectNotFoundError("shipmentID", cmd.ShipmentID())
	}

	if err = recalculateOrder(ctx, uow, h.sink, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
