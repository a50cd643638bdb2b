package queries

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersWithBalanceDueQueryHandler lists completed orders that still owe
// money, reading the derived state the recalculation engine last persisted.
type GetOrdersWithBalanceDueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersWithBalanceDueQueryHandler creates a handler for balance-due
// queries. Requires a GORM database connection for query execution.
func NewGetOrdersWithBalanceDueQueryHandler(db *gorm.DB) GetOrdersWithBalanceDueQueryHandler {
	return GetOrdersWithBalanceDueQueryHandler{db: db}
}

// Handle executes the query.
// Returns orders sorted by outstanding balance, largest first.
func (h GetOrdersWithBalanceDueQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithBalanceDueQuery,
) ([]GetOrdersWithBalanceDueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersWithBalanceDueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total,
			payment_total
		FROM orders
		WHERE completed = TRUE
		  AND payment_state = 'balance_due'
		ORDER BY total - payment_total DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                  uuid.UUID
			total, paymentTotal decimal.Decimal
		)

		if err = rows.Scan(&id, &total, &paymentTotal); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		totalMoney := kernel.NewMoneyFromDecimal(total)
		paymentMoney := kernel.NewMoneyFromDecimal(paymentTotal)
		orders = append(orders, GetOrdersWithBalanceDueQueryResponse{
			ID:                 orderID,
			Total:              totalMoney,
			PaymentTotal:       paymentMoney,
			OutstandingBalance: totalMoney.Sub(paymentMoney),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
