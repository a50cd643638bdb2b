// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves the persisted derived state of a single
// order: its monetary totals, payment state and shipment state.
//
// Example:
//
//	query, _ := NewGetOrderSummaryQuery(orderID)
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order summary: %w", err)
//	}
//
//	fmt.Printf("order %s owes %s\n", summary.ID, summary.Total.Sub(summary.PaymentTotal))
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for a single order's summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse is the read model for one order's derived
// state as last persisted by the recalculation engine.
type GetOrderSummaryQueryResponse struct {
	ID              kernel.UUID
	Completed       bool
	Backordered     bool
	ItemTotal       kernel.Money
	ShipmentTotal   kernel.Money
	AdjustmentTotal kernel.Money
	PaymentTotal    kernel.Money
	Total           kernel.Money
	PaymentState    order.PaymentState
	ShipmentState   order.ShipmentState
}
