package order

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
)

// ErrAdjustmentIsNotConstructed is returned when an Adjustment instance was
// not created through the NewAdjustment factory function.
var ErrAdjustmentIsNotConstructed = errors.New("Adjustment must be created via NewAdjustment")

// Adjustment is a discount or credit applied to a line item. Only eligible
// adjustments count toward totals; eligibility is decided by an external
// promotion-rule collaborator and read here as a plain flag.
type Adjustment struct {
	id       kernel.UUID
	amount   kernel.Money
	eligible bool

	isConstructed bool
}

// NewAdjustment creates an adjustment. Discounts carry negative amounts,
// surcharges positive ones.
func NewAdjustment(id kernel.UUID, amount kernel.Money, eligible bool) (*Adjustment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Adjustment{
		id:            id,
		amount:        amount,
		eligible:      eligible,
		isConstructed: true,
	}, nil
}

// Validate ensures the Adjustment was created through NewAdjustment.
func (a *Adjustment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdjustmentIsNotConstructed
	}
	return nil
}

// ID returns the adjustment's unique identifier.
func (a *Adjustment) ID() kernel.UUID {
	return a.id
}

// Amount returns the adjustment amount.
func (a *Adjustment) Amount() kernel.Money {
	return a.amount
}

// Eligible reports whether the adjustment currently counts toward totals.
func (a *Adjustment) Eligible() bool {
	return a.eligible
}
