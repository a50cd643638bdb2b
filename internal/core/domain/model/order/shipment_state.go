package order

import (
	"fmt"

	"orderstate/internal/pkg/errs"
)

// ShipmentState represents the derived fulfillment status of an order,
// computed from the states of its shipments and the order's backorder flag.
//
// Three values are order-level aggregates (Backorder, Partial, Unset); the
// remaining values mirror the state of the shipments when they all agree.
// As with PaymentState there are no transition rules: reclassification may
// produce any value as shipments change.
type ShipmentState int

const (
	// ShipmentStateUnset indicates the order has no shipments yet, or its
	// shipment state has never been classified. Valid terminal value.
	ShipmentStateUnset ShipmentState = iota

	// ShipmentStateBackorder indicates inventory on the order cannot currently
	// be fulfilled from stock. Takes precedence over every other value.
	ShipmentStateBackorder

	// ShipmentStatePartial indicates the order's shipments disagree on their
	// state, meaning fulfillment is in mixed progress.
	ShipmentStatePartial

	// ShipmentStatePending indicates every shipment is awaiting processing.
	ShipmentStatePending

	// ShipmentStateReady indicates every shipment is ready to ship.
	ShipmentStateReady

	// ShipmentStateShipped indicates every shipment has shipped.
	ShipmentStateShipped
)

// getShipmentStateStrings returns a map of ShipmentState values to their
// string representations used for persistence and display.
func getShipmentStateStrings() map[ShipmentState]string {
	return map[ShipmentState]string{
		ShipmentStateUnset:     "unset",
		ShipmentStateBackorder: "backorder",
		ShipmentStatePartial:   "partial",
		ShipmentStatePending:   "pending",
		ShipmentStateReady:     "ready",
		ShipmentStateShipped:   "shipped",
	}
}

// Validate checks if the ShipmentState value is one of the defined states.
func (s ShipmentState) Validate() error {
	if _, ok := getShipmentStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment state is invalid",
			fmt.Errorf("%d is not a valid shipment state", s))
	}
	return nil
}

// String returns the persisted name of the shipment state.
// Implements fmt.Stringer; returns "unset" for out-of-range values.
func (s ShipmentState) String() string {
	if str, ok := getShipmentStateStrings()[s]; ok {
		return str
	}
	return "unset"
}

// ShipmentStateFromString parses a persisted shipment state name.
// Returns an error for unknown names.
func ShipmentStateFromString(s string) (ShipmentState, error) {
	for state, str := range getShipmentStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return ShipmentStateUnset, errs.NewValueIsInvalidErrorWithCause("shipment state is invalid",
		fmt.Errorf("%q is not a valid shipment state", s))
}
