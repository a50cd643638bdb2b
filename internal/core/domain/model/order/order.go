package order

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Hook is a callback registered on an order and invoked once per
// recalculation, in registration order, after totals are recomputed.
// A non-nil error aborts the remaining hooks and the persistence write.
type Hook func(*Order) error

// Order is the aggregate root whose derived financial and lifecycle state is
// recomputed whenever a related child record (payment, line item, shipment,
// adjustment) changes.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - total always equals itemTotal + shipmentTotal + adjustmentTotal
//   - paymentState and shipmentState only change while the order is completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate never persists itself: recalculation mutates in-memory fields
// and a separate raw-write capability flushes derived state to storage.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// completed gates whether payment and shipment classification runs
	completed bool

	// backordered mirrors the external inventory predicate; when set,
	// shipment classification short-circuits to the backorder state
	backordered bool

	// monetary totals, two-decimal currency semantics
	itemTotal       kernel.Money
	shipmentTotal   kernel.Money
	adjustmentTotal kernel.Money
	paymentTotal    kernel.Money
	total           kernel.Money

	// derived states, retained across recalculations while uncompleted
	paymentState  PaymentState
	shipmentState ShipmentState

	// hooks run once per recalculation in registration order; in-memory only
	hooks []Hook

	// stateChanges accumulates notifications for external observers until drained
	stateChanges []StateChange

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with zero totals, unset derived states and the
// uncompleted lifecycle phase. This is the only way (besides RestoreOrder) to
// create a valid Order.
func NewOrder(id kernel.UUID) (*Order, error) {
	return RestoreOrder(id, false, false,
		kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
		PaymentStateUnset, ShipmentStateUnset)
}

// RestoreOrder recreates an order from its persisted snapshot.
// The total is recomputed from the three component totals so the additivity
// invariant holds regardless of what storage contains.
func RestoreOrder(
	id kernel.UUID,
	completed bool,
	backordered bool,
	itemTotal kernel.Money,
	shipmentTotal kernel.Money,
	adjustmentTotal kernel.Money,
	paymentTotal kernel.Money,
	paymentState PaymentState,
	shipmentState ShipmentState,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		paymentState.Validate(),
		shipmentState.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		completed:       completed,
		backordered:     backordered,
		itemTotal:       itemTotal,
		shipmentTotal:   shipmentTotal,
		adjustmentTotal: adjustmentTotal,
		paymentTotal:    paymentTotal,
		total:           itemTotal.Add(shipmentTotal).Add(adjustmentTotal),
		paymentState:    paymentState,
		shipmentState:   shipmentState,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Completed reports whether the order finished checkout and is eligible for
// payment and shipment state tracking.
func (o *Order) Completed() bool {
	return o.completed
}

// Backordered reports whether inventory on the order cannot currently be
// fulfilled from stock.
func (o *Order) Backordered() bool {
	return o.backordered
}

// ItemTotal returns the sum of line item amounts.
func (o *Order) ItemTotal() kernel.Money {
	return o.itemTotal
}

// ShipmentTotal returns the sum of shipment costs.
func (o *Order) ShipmentTotal() kernel.Money {
	return o.shipmentTotal
}

// AdjustmentTotal returns the sum of line item adjustment totals.
func (o *Order) AdjustmentTotal() kernel.Money {
	return o.adjustmentTotal
}

// PaymentTotal returns the sum of completed payment amounts.
func (o *Order) PaymentTotal() kernel.Money {
	return o.paymentTotal
}

// Total returns the order total. Always equal to
// ItemTotal + ShipmentTotal + AdjustmentTotal.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentState returns the order's derived payment state.
func (o *Order) PaymentState() PaymentState {
	return o.paymentState
}

// ShipmentState returns the order's derived shipment state.
func (o *Order) ShipmentState() ShipmentState {
	return o.shipmentState
}

// MarkCompleted moves the order into the completed lifecycle phase, making
// it eligible for payment and shipment classification. Idempotent.
func (o *Order) MarkCompleted() error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.completed = true
	return nil
}

// SetBackordered records the external inventory predicate on the order.
func (o *Order) SetBackordered(backordered bool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.backordered = backordered
	return nil
}

// UpdateTotals replaces the order's monetary totals with freshly aggregated
// sums. The order total is derived here from the three component totals, so
// the additivity invariant cannot be violated by callers.
func (o *Order) UpdateTotals(itemTotal, shipmentTotal, adjustmentTotal, paymentTotal kernel.Money) {
	o.itemTotal = itemTotal
	o.shipmentTotal = shipmentTotal
	o.adjustmentTotal = adjustmentTotal
	o.paymentTotal = paymentTotal
	o.total = itemTotal.Add(shipmentTotal).Add(adjustmentTotal)
}

// ChangePaymentState sets the derived payment state and records a
// notification for external observers when the value actually changes.
func (o *Order) ChangePaymentState(next PaymentState) {
	if next == o.paymentState {
		return
	}

	o.stateChanges = append(o.stateChanges, StateChange{
		Domain: StateDomainPayment,
		From:   o.paymentState.String(),
		To:     next.String(),
	})
	o.paymentState = next
}

// ChangeShipmentState sets the derived shipment state and records a
// notification for external observers when the value actually changes.
func (o *Order) ChangeShipmentState(next ShipmentState) {
	if next == o.shipmentState {
		return
	}

	o.stateChanges = append(o.stateChanges, StateChange{
		Domain: StateDomainShipment,
		From:   o.shipmentState.String(),
		To:     next.String(),
	})
	o.shipmentState = next
}

// RegisterHook appends a callback to the order's hook list. Hooks run once
// per recalculation in registration order and are not persisted.
func (o *Order) RegisterHook(hook Hook) {
	o.hooks = append(o.hooks, hook)
}

// Hooks returns the registered hooks in registration order.
func (o *Order) Hooks() []Hook {
	return o.hooks
}

// DrainStateChanges returns the accumulated state-change notifications and
// clears the buffer. Callers forward them to the notification sink.
func (o *Order) DrainStateChanges() []StateChange {
	changes := o.stateChanges
	o.stateChanges = nil
	return changes
}
