package commands

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/guard"
)

var (
	ErrRecalculateOrderCommandIsNotConstructed = errors.New(
		"RecalculateOrderCommand must be created via NewRecalculateOrderCommand constructor",
	)
)

// RecalculateOrderCommand represents a request to re-derive an order's totals
// and states from its current children without mutating any of them. Used by
// the reconciliation job and for manual repair after out-of-band data changes.
type RecalculateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecalculateOrderCommand creates a command to recalculate an order.
func NewRecalculateOrderCommand(orderID kernel.UUID) (RecalculateOrderCommand, error) {
	cmd := RecalculateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RecalculateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to recalculate.
func (c RecalculateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecalculateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
