package queries

import (
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/guard"
)

var (
	ErrGetOrdersWithBalanceDueQueryIsNotConstructed = errors.New(
		"GetOrdersWithBalanceDueQuery must be created via NewGetOrdersWithBalanceDueQuery constructor",
	)
)

// GetOrdersWithBalanceDueQuery retrieves completed orders whose derived
// payment state says the customer still owes money. Used by billing and
// dunning workflows.
type GetOrdersWithBalanceDueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersWithBalanceDueQuery creates a query for orders owing money.
// This is a parameterless query over the persisted derived state.
func NewGetOrdersWithBalanceDueQuery() GetOrdersWithBalanceDueQuery {
	return GetOrdersWithBalanceDueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersWithBalanceDueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithBalanceDueQueryIsNotConstructed)
}

// GetOrdersWithBalanceDueQueryResponse represents one order owing money.
// OutstandingBalance is total minus payment total as last derived.
type GetOrdersWithBalanceDueQueryResponse struct {
	ID                 kernel.UUID
	Total              kernel.Money
	PaymentTotal       kernel.Money
	OutstandingBalance kernel.Money
}
