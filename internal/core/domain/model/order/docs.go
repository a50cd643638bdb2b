// Package order provides domain entities and business logic for order derived
// state. It implements the Order aggregate root together with the child
// records whose snapshots feed recalculation.
//
// The package includes:
//   - Order: The aggregate root carrying monetary totals, derived payment and
//     shipment states, registered hooks and observer notifications
//   - Payment, LineItem, Shipment, Adjustment: child records owned by external
//     collaborators and read here as snapshots
//   - PaymentState, ShipmentState: derived order-level state enumerations
//   - Children: the snapshot of child collections handed to recalculation
//
// Key business rules:
//   - The order total always equals itemTotal + shipmentTotal + adjustmentTotal
//   - Only completed payments contribute to the payment total
//   - Only eligible adjustments contribute to adjustment totals
//   - Derived states change only while the order is completed; uncompleted
//     orders retain their prior persisted values
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
