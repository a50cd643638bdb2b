// Package services provides domain services that orchestrate business
// operations across the order aggregate and its child records. It implements
// the derived-state recalculation engine that keeps an order's monetary
// totals and lifecycle classifications consistent with its payments, line
// items, shipments and adjustments.
//
// The package includes:
//   - TotalsAggregator: sums child monetary fields into order totals
//   - PaymentStateClassifier: derives payment state from totals and payment history
//   - ShipmentStateClassifier: derives shipment state from shipment states and backorders
//   - HookDispatcher: runs order hooks in registration order
//   - Recalculator: orchestrates the above in a fixed sequence and persists the
//     result through a raw write that bypasses save lifecycle callbacks
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root following
// Domain-Driven Design principles.
package services
