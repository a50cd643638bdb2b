package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one order's persisted derived state.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// domain aggregate is never materialized on the read path.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the query for a single order.
// Returns errs.ErrObjectNotFound when no order exists with the given ID.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			completed,
			backordered,
			item_total,
			shipment_total,
			adjustment_total,
			payment_total,
			total,
			payment_state,
			shipment_state
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id                                                           uuid.UUID
		completed, backordered                                       bool
		itemTotal, shipmentTotal, adjustmentTotal, paymentTotal, tot decimal.Decimal
		paymentState, shipmentState                                  string
	)

	err := row.Scan(
		&id,
		&completed,
		&backordered,
		&itemTotal,
		&shipmentTotal,
		&adjustmentTotal,
		&paymentTotal,
		&tot,
		&paymentState,
		&shipmentState,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	pState, err := order.PaymentStateFromString(paymentState)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	sState, err := order.ShipmentStateFromString(shipmentState)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return GetOrderSummaryQueryResponse{
		ID:              orderID,
		Completed:       completed,
		Backordered:     backordered,
		ItemTotal:       kernel.NewMoneyFromDecimal(itemTotal),
		ShipmentTotal:   kernel.NewMoneyFromDecimal(shipmentTotal),
		AdjustmentTotal: kernel.NewMoneyFromDecimal(adjustmentTotal),
		PaymentTotal:    kernel.NewMoneyFromDecimal(paymentTotal),
		Total:           kernel.NewMoneyFromDecimal(tot),
		PaymentState:    pState,
		ShipmentState:   sState,
	}, nil
}
