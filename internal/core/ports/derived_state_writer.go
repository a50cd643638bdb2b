package ports

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
)

// DerivedStateWriter is the raw write capability used exclusively by the
// recalculation engine to flush derived order fields to storage.
//
// Implementations must bypass every save lifecycle callback that the normal
// OrderRepository path runs. This is what prevents infinite recursion:
// collaborator saves re-enter recalculation, raw writes never do. The two
// capabilities are deliberately separate interfaces rather than a flag on
// one method, so the guard is enforced by the type system.
type DerivedStateWriter interface {
	// WriteDerivedState writes exactly the order's derived fields —
	// paymentState, shipmentState, itemTotal, shipmentTotal,
	// adjustmentTotal, paymentTotal, total — directly to storage.
	// Storage errors surface to the caller; there is no fallback.
	WriteDerivedState(ctx context.Context, o *order.Order) error
}

// StateChangeSink receives fire-and-forget notifications whenever an order's
// derived payment or shipment state changes value. External observers such
// as audit trails consume these; the recalculation core never reads back.
type StateChangeSink interface {
	StateChanged(ctx context.Context, orderID kernel.UUID, change order.StateChange)
}
