// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// The order row carries two kinds of columns: lifecycle columns written through
// the normal repository path, and derived columns (totals and states) written
// exclusively by the raw derived-state writer.
package orderrepo

import (
	"time"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary totals use fixed-point numeric columns to avoid float drift.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Completed   bool      `gorm:"index"`
	Backordered bool

	ItemTotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShipmentTotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	AdjustmentTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentTotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`

	PaymentState  string `gorm:"type:varchar(20);index"`
	ShipmentState string `gorm:"type:varchar(20)"`

	UpdatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Completed:       aggregate.Completed(),
		Backordered:     aggregate.Backordered(),
		ItemTotal:       aggregate.ItemTotal().Amount(),
		ShipmentTotal:   aggregate.ShipmentTotal().Amount(),
		AdjustmentTotal: aggregate.AdjustmentTotal().Amount(),
		PaymentTotal:    aggregate.PaymentTotal().Amount(),
		Total:           aggregate.Total().Amount(),
		PaymentState:    aggregate.PaymentState().String(),
		ShipmentState:   aggregate.ShipmentState().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which recomputes
// the grand total from its components.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentState, err := order.PaymentStateFromString(dto.PaymentState)
	if err != nil {
		return nil, err
	}

	shipmentState, err := order.ShipmentStateFromString(dto.ShipmentState)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Completed,
		dto.Backordered,
		kernel.NewMoneyFromDecimal(dto.ItemTotal),
		kernel.NewMoneyFromDecimal(dto.ShipmentTotal),
		kernel.NewMoneyFromDecimal(dto.AdjustmentTotal),
		kernel.NewMoneyFromDecimal(dto.PaymentTotal),
		paymentState,
		shipmentState,
	)
}
