package commands

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
)

// AdjustmentInput describes a price adjustment attached to a new line item.
// Only eligible adjustments count toward the order's adjustment total.
type AdjustmentInput struct {
	ID       kernel.UUID
	Amount   kernel.Money
	Eligible bool
}

// AddLineItemCommand represents a request to add a purchased item, with any
// promotions or surcharges applied to it, to an order.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineItemID  kernel.UUID
	amount      kernel.Money
	adjustments []AdjustmentInput

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a line item to an order.
// Validates all identifiers, including those of the attached adjustments.
func NewAddLineItemCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	amount kernel.Money,
	adjustments []AdjustmentInput,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddLineItemCommand{}, err
	}
	if err := cmd.setLineItemID(lineItemID); err != nil {
		return AddLineItemCommand{}, err
	}
	if err := cmd.setAdjustments(adjustments); err != nil {
		return AddLineItemCommand{}, err
	}
	cmd.amount = amount

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the line item.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the identifier for the new line item.
func (c AddLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Amount returns the base price of the line item before adjustments.
func (c AddLineItemCommand) Amount() kernel.Money {
	return c.amount
}

// Adjustments returns the adjustments to attach to the line item.
func (c AddLineItemCommand) Adjustments() []AdjustmentInput {
	return c.adjustments
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *AddLineItemCommand) setAdjustments(adjustments []AdjustmentInput) error {
	for _, adjustment := range adjustments {
		if err := adjustment.ID.Validate(); err != nil {
			return err
		}
	}

	c.adjustments = adjustments
	return nil
}
