package services

import (
	"context"
	"fmt"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
)

// DerivedStateWriter is the raw persistence capability consumed by the
// recalculator. It writes the order's derived fields directly to storage,
// bypassing the normal save lifecycle that collaborators use.
//
// Keeping this a separate contract from the normal repository save path is
// what makes the recursion guard structural: a write through this interface
// has no lifecycle callbacks to call back into recalculation.
type DerivedStateWriter interface {
	WriteDerivedState(ctx context.Context, o *order.Order) error
}

// StateChangeSink receives fire-and-forget notifications about derived state
// changes, for observers outside the recalculation core such as audit and
// history logging. No return value is consumed.
type StateChangeSink interface {
	StateChanged(ctx context.Context, orderID kernel.UUID, change order.StateChange)
}

// Recalculator recomputes an order's derived financial and lifecycle state
// from the current snapshot of its child records and persists the result.
// It is the sole entry point of the recalculation core.
//
// Recalculate executes a fixed sequence:
//  1. Always: recompute monetary totals from the child snapshot.
//  2. If the order is completed: classify payment state, let every shipment
//     self-update against the order, then classify shipment state.
//  3. Always: run registered hooks in registration order.
//  4. Always: write derived fields through the raw persistence path.
//
// Totals run first so classification reads sums derived from the snapshot at
// hand, never the values restored from storage. Classifying against stored
// totals would lag the persisted payment state one invocation behind the
// children and break idempotence whenever the triggering mutation changed a
// monetary field.
//
// Invariants:
//   - Recalculation is idempotent: an unchanged child snapshot yields
//     identical order state on every invocation.
//   - No step re-enters Recalculate. The final write bypasses save lifecycle
//     callbacks, so collaborator saves that trigger recalculation are never
//     invoked from inside it. Hooks must honor the same discipline; this is
//     caller contract, not a runtime check.
//   - A hook or shipment self-update failure aborts the remaining pipeline,
//     so derived state is never persisted ahead of a failed step.
//
// The recalculator performs no locking and manages no transactions: callers
// are expected to run it on the transaction that already holds the mutated
// child records, so the snapshot it reads is consistent.
type Recalculator struct {
	totals    TotalsAggregator
	payments  PaymentStateClassifier
	shipments ShipmentStateClassifier
	hooks     HookDispatcher
	writer    DerivedStateWriter
	sink      StateChangeSink
}

// NewRecalculator creates a Recalculator bound to a raw persistence writer
// and a state-change notification sink.
func NewRecalculator(writer DerivedStateWriter, sink StateChangeSink) Recalculator {
	return Recalculator{
		totals:    NewTotalsAggregator(),
		payments:  NewPaymentStateClassifier(),
		shipments: NewShipmentStateClassifier(),
		hooks:     NewHookDispatcher(),
		writer:    writer,
		sink:      sink,
	}
}

// Recalculate derives the order's state from the child snapshot and persists
// it. Any error aborts the remaining steps and surfaces to the caller, which
// decides whether to retry the whole operation.
func (r Recalculator) Recalculate(ctx context.Context, o *order.Order, children order.Children) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.totals.Aggregate(o, children)

	if o.Completed() {
		r.payments.Classify(o, children)

		for _, shipment := range children.Shipments {
			if err := shipment.Sync(o); err != nil {
				return fmt.Errorf("shipment %s self-update failed: %w", shipment.ID(), err)
			}
		}

		r.shipments.Classify(o, children)
	}

	for _, change := range o.DrainStateChanges() {
		r.sink.StateChanged(ctx, o.ID(), change)
	}

	if err := r.hooks.Dispatch(o); err != nil {
		return err
	}

	if err := r.writer.WriteDerivedState(ctx, o); err != nil {
		return fmt.Errorf("failed to persist derived state for order %s: %w", o.ID(), err)
	}

	return nil
}
