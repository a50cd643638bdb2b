package order

import (
	"errors"
	"fmt"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory functions.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// ShipmentStatus represents the fulfillment state of an individual shipment.
type ShipmentStatus int

const (
	// ShipmentStatusPending indicates the shipment is awaiting processing.
	ShipmentStatusPending ShipmentStatus = iota

	// ShipmentStatusReady indicates the shipment can be handed to a carrier.
	ShipmentStatusReady

	// ShipmentStatusShipped indicates the shipment left the warehouse.
	// Shipped is final: Sync never moves a shipment out of it.
	ShipmentStatusShipped
)

// getShipmentStatusStrings returns a map of ShipmentStatus values to their
// string representations used for persistence and display.
func getShipmentStatusStrings() map[ShipmentStatus]string {
	return map[ShipmentStatus]string{
		ShipmentStatusPending: "pending",
		ShipmentStatusReady:   "ready",
		ShipmentStatusShipped: "shipped",
	}
}

// Validate checks if the ShipmentStatus value is one of the defined statuses.
func (s ShipmentStatus) Validate() error {
	if _, ok := getShipmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the persisted name of the shipment status.
func (s ShipmentStatus) String() string {
	if str, ok := getShipmentStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// ShipmentStatusFromString parses a persisted shipment status name.
func ShipmentStatusFromString(s string) (ShipmentStatus, error) {
	for status, str := range getShipmentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ShipmentStatusPending, errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// OrderState maps a shipment status to the order-level shipment state that
// an order takes when all of its shipments share this status.
func (s ShipmentStatus) OrderState() ShipmentState {
	switch s {
	case ShipmentStatusReady:
		return ShipmentStateReady
	case ShipmentStatusShipped:
		return ShipmentStateShipped
	default:
		return ShipmentStatePending
	}
}

// Shipment is a child record of an order representing one physical delivery.
// Its cost contributes to the order's shipment total; its status feeds the
// order-level shipment state classification.
//
// Shipments are created and persisted by an external collaborator; during
// recalculation each shipment is given one chance to self-update against the
// order via Sync before classification reads its status.
type Shipment struct {
	id     kernel.UUID
	cost   kernel.Money
	status ShipmentStatus

	isConstructed bool
}

// NewShipment creates a pending shipment.
func NewShipment(id kernel.UUID, cost kernel.Money) (*Shipment, error) {
	return RestoreShipment(id, cost, ShipmentStatusPending)
}

// RestoreShipment recreates a shipment from persistence.
func RestoreShipment(id kernel.UUID, cost kernel.Money, status ShipmentStatus) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		cost:          cost,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment was created through a factory function.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Cost returns the shipment cost.
func (s *Shipment) Cost() kernel.Money {
	return s.cost
}

// Status returns the shipment's fulfillment status.
func (s *Shipment) Status() ShipmentStatus {
	return s.status
}

// MarkShipped transitions the shipment to the shipped status.
// Shipped is terminal, so repeated calls are harmless.
func (s *Shipment) MarkShipped() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.status = ShipmentStatusShipped
	return nil
}

// Sync lets the shipment transition based on the order's current context.
// A shipped shipment never changes. Otherwise the shipment becomes ready
// when the order is completed, fully paid and not backordered, and falls
// back to pending when any of those conditions no longer holds.
//
// Sync must be idempotent: invoking it twice against an unchanged order
// yields the same status.
func (s *Shipment) Sync(o *Order) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if s.status == ShipmentStatusShipped {
		return nil
	}

	if o.Completed() && !o.Backordered() && o.PaymentState() == PaymentStatePaid {
		s.status = ShipmentStatusReady
	} else {
		s.status = ShipmentStatusPending
	}

	return nil
}
