package lineitemrepo

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// Add saves a new line item together with its adjustments.
func (r *GormLineItemRepository) Add(ctx context.Context, orderID kernel.UUID, lineItem *order.LineItem) error {
	if err := lineItem.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID, lineItem)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves an order's line items with their adjustments.
func (r *GormLineItemRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Preload("Adjustments").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		lineItem, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}
