package order

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem or RestoreLineItem factory functions.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is a child record of an order representing one purchasable entry.
// Its amount contributes to the order's item total; the sum of its eligible
// adjustments contributes to the order's adjustment total.
//
// Line items are created and persisted by an external collaborator; this
// model only reads their current snapshot during recalculation.
type LineItem struct {
	id          kernel.UUID
	amount      kernel.Money
	adjustments []*Adjustment

	isConstructed bool
}

// NewLineItem creates a line item with no adjustments.
func NewLineItem(id kernel.UUID, amount kernel.Money) (*LineItem, error) {
	return RestoreLineItem(id, amount, nil)
}

// RestoreLineItem recreates a line item and its adjustments from persistence.
// Every adjustment must itself be properly constructed.
func RestoreLineItem(id kernel.UUID, amount kernel.Money, adjustments []*Adjustment) (*LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, adjustment := range adjustments {
		if err := adjustment.Validate(); err != nil {
			return nil, err
		}
	}

	return &LineItem{
		id:            id,
		amount:        amount,
		adjustments:   adjustments,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through a factory function.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// Amount returns the line item amount.
func (li *LineItem) Amount() kernel.Money {
	return li.amount
}

// Adjustments returns the adjustments applied to this line item.
func (li *LineItem) Adjustments() []*Adjustment {
	return li.adjustments
}

// AddAdjustment appends an adjustment to the line item.
func (li *LineItem) AddAdjustment(adjustment *Adjustment) error {
	if err := adjustment.Validate(); err != nil {
		return err
	}

	li.adjustments = append(li.adjustments, adjustment)
	return nil
}

// AdjustmentTotal returns the sum of the line item's eligible adjustments.
// Ineligible adjustments are kept on the record but excluded from the sum.
func (li *LineItem) AdjustmentTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, adjustment := range li.adjustments {
		if adjustment.Eligible() {
			total = total.Add(adjustment.Amount())
		}
	}
	return total
}
