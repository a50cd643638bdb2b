package commands

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/guard"
)

var (
	ErrShipShipmentCommandIsNotConstructed = errors.New(
		"ShipShipmentCommand must be created via NewShipShipmentCommand constructor",
	)
)

// ShipShipmentCommand represents a request to mark one of an order's
// shipments as shipped. Shipped is a terminal status: once applied the
// shipment no longer participates in self-updates.
type ShipShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipShipmentCommand creates a command to mark a shipment as shipped.
func NewShipShipmentCommand(orderID kernel.UUID, shipmentID kernel.UUID) (ShipShipmentCommand, error) {
	cmd := ShipShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ShipShipmentCommand{}, err
	}
	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ShipShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipShipmentCommand) Validate() error {
	return c.guard.Validate(ErrShipShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the shipment.
func (c ShipShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentID returns the identifier of the shipment to mark as shipped.
func (c ShipShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ShipShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
