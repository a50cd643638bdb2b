// Package lineitemrepo persists an order's line items and their adjustments.
package lineitemrepo

import (
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDTO represents the database structure for line item records.
// Adjustments are a child table loaded together with their line item.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Adjustments []AdjustmentDTO `gorm:"foreignKey:LineItemID"`
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

// AdjustmentDTO represents the database structure for price adjustments.
type AdjustmentDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineItemID uuid.UUID       `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Eligible   bool
}

// TableName overrides GORM's default naming to use "adjustments".
func (AdjustmentDTO) TableName() string {
	return "adjustments"
}

func fromDomain(orderID kernel.UUID, lineItem *order.LineItem) LineItemDTO {
	adjustments := make([]AdjustmentDTO, 0, len(lineItem.Adjustments()))
	for _, adjustment := range lineItem.Adjustments() {
		adjustments = append(adjustments, AdjustmentDTO{
			ID:         adjustment.ID().Bytes(),
			LineItemID: lineItem.ID().Bytes(),
			Amount:     adjustment.Amount().Amount(),
			Eligible:   adjustment.Eligible(),
		})
	}

	return LineItemDTO{
		ID:          lineItem.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		Amount:      lineItem.Amount().Amount(),
		Adjustments: adjustments,
	}
}

func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	adjustments := make([]*order.Adjustment, 0, len(dto.Adjustments))
	for _, adjustmentDTO := range dto.Adjustments {
		adjustmentID, idErr := kernel.UUIDFromBytes(adjustmentDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		adjustment, adjErr := order.NewAdjustment(
			adjustmentID,
			kernel.NewMoneyFromDecimal(adjustmentDTO.Amount),
			adjustmentDTO.Eligible,
		)
		if adjErr != nil {
			return nil, adjErr
		}
		adjustments = append(adjustments, adjustment)
	}

	return order.RestoreLineItem(id, kernel.NewMoneyFromDecimal(dto.Amount), adjustments)
}
