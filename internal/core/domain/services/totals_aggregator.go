package services

import (
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
)

// TotalsAggregator sums monetary fields from an order's child collections
// into the order-level totals.
//
// Aggregation rules:
//   - paymentTotal: sum of amounts over completed payments only
//   - itemTotal: sum of amounts over all line items
//   - shipmentTotal: sum of costs over all shipments
//   - adjustmentTotal: sum of eligible adjustment totals over all line items
//   - total: itemTotal + shipmentTotal + adjustmentTotal (derived inside the aggregate)
//
// Aggregate has no side effects beyond setting the order's totals in memory.
// Empty collections sum to zero.
type TotalsAggregator struct{}

// NewTotalsAggregator creates a new TotalsAggregator instance.
func NewTotalsAggregator() TotalsAggregator {
	return TotalsAggregator{}
}

// Aggregate recomputes the order's five monetary totals from the current
// child snapshot.
func (TotalsAggregator) Aggregate(o *order.Order, children order.Children) {
	paymentTotal := kernel.ZeroMoney()
	for _, payment := range children.Payments {
		if payment.IsCompleted() {
			paymentTotal = paymentTotal.Add(payment.Amount())
		}
	}

	itemTotal := kernel.ZeroMoney()
	adjustmentTotal := kernel.ZeroMoney()
	for _, lineItem := range children.LineItems {
		itemTotal = itemTotal.Add(lineItem.Amount())
		adjustmentTotal = adjustmentTotal.Add(lineItem.AdjustmentTotal())
	}

	shipmentTotal := kernel.ZeroMoney()
	for _, shipment := range children.Shipments {
		shipmentTotal = shipmentTotal.Add(shipment.Cost())
	}

	o.UpdateTotals(itemTotal, shipmentTotal, adjustmentTotal, paymentTotal)
}
