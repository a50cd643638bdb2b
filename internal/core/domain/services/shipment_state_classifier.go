package services

import (
	"orderstate/internal/core/domain/model/order"
)

// ShipmentStateClassifier derives an order's shipment state from the states
// of its shipments and the order's backorder flag. It runs only for completed
// orders, after every shipment has been given a chance to self-update.
//
// Classification rules, evaluated in order:
//  1. A backordered order is always in the backorder state.
//  2. Shipments disagreeing on their state mean partial fulfillment.
//  3. Shipments agreeing on one state give the order that state.
//  4. No shipments at all leaves the state unset; unset is a valid terminal
//     value, not a failure.
//
// Known gap: inventory units not assigned to any shipment are not detected
// as a partial-fulfillment signal. Classification reads shipments only.
type ShipmentStateClassifier struct{}

// NewShipmentStateClassifier creates a new ShipmentStateClassifier instance.
func NewShipmentStateClassifier() ShipmentStateClassifier {
	return ShipmentStateClassifier{}
}

// Classify sets the order's shipment state from the current child snapshot.
// A state-change notification is recorded on the order when the value moves.
func (ShipmentStateClassifier) Classify(o *order.Order, children order.Children) {
	if o.Backordered() {
		o.ChangeShipmentState(order.ShipmentStateBackorder)
		return
	}

	if len(children.Shipments) == 0 {
		o.ChangeShipmentState(order.ShipmentStateUnset)
		return
	}

	first := children.Shipments[0].Status()
	for _, shipment := range children.Shipments[1:] {
		if shipment.Status() != first {
			o.ChangeShipmentState(order.ShipmentStatePartial)
			return
		}
	}

	o.ChangeShipmentState(first.OrderState())
}
