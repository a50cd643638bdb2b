package commands

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/guard"
)

var (
	ErrAddShipmentCommandIsNotConstructed = errors.New(
		"AddShipmentCommand must be created via NewAddShipmentCommand constructor",
	)
)

// AddShipmentCommand represents a request to attach a new shipment, in the
// pending status, to an order.
type AddShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	shipmentID kernel.UUID
	cost       kernel.Money

	guard guard.ConstructorGuard
}

// NewAddShipmentCommand creates a command to attach a shipment to an order.
func NewAddShipmentCommand(
	orderID kernel.UUID,
	shipmentID kernel.UUID,
	cost kernel.Money,
) (AddShipmentCommand, error) {
	cmd := AddShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddShipmentCommand{}, err
	}
	if err := cmd.setShipmentID(shipmentID); err != nil {
		return AddShipmentCommand{}, err
	}
	cmd.cost = cost

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the shipment.
func (c AddShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentID returns the identifier for the new shipment.
func (c AddShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Cost returns the delivery cost of the shipment.
func (c AddShipmentCommand) Cost() kernel.Money {
	return c.cost
}

func (c *AddShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
