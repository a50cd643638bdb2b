package ports

import (
	"context"
	"time"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
)

// OrderRepository defines the normal lifecycle persistence contract for order
// aggregates. Saves through this interface are the collaborator path: code
// that mutates an order or its children saves here and then triggers
// recalculation. Derived fields are flushed through the separate
// DerivedStateWriter, never through this interface.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes to an existing order aggregate
	// (completion, backorder flag). Derived fields are not written here.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetTouchedSince retrieves the IDs of orders whose rows changed after
	// the given instant. Used by the reconciliation job to re-derive state
	// for recently mutated orders.
	GetTouchedSince(ctx context.Context, since time.Time) ([]kernel.UUID, error)
}

// PaymentRepository provides the payment collection scoped to an order.
type PaymentRepository interface {
	// Add persists a new payment belonging to an order.
	Add(ctx context.Context, orderID kernel.UUID, payment *order.Payment) error

	// GetAllForOrder retrieves an order's payments ordered by creation time,
	// oldest first. The last element is the most recently added payment.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Payment, error)
}

// LineItemRepository provides the line item collection scoped to an order.
type LineItemRepository interface {
	// Add persists a new line item, including its adjustments.
	Add(ctx context.Context, orderID kernel.UUID, lineItem *order.LineItem) error

	// GetAllForOrder retrieves an order's line items with their adjustments.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error)
}

// ShipmentRepository provides the shipment collection scoped to an order.
type ShipmentRepository interface {
	// Add persists a new shipment belonging to an order.
	Add(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error

	// Update persists changes to an existing shipment, including status
	// transitions made by Sync during recalculation.
	Update(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error

	// GetAllForOrder retrieves an order's shipments.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Shipment, error)
}
