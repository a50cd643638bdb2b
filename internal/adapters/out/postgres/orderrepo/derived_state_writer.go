package orderrepo

import (
	"context"

	"orderstate/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormDerivedStateWriter implements the raw persistence path for derived
// order state. UpdateColumns issues a plain UPDATE without GORM hooks or
// the automatic updated_at touch, so flushing derived state can never
// re-enter recalculation and never marks the row as touched for the
// reconciliation job.
type GormDerivedStateWriter struct {
	db *gorm.DB
}

// NewGormDerivedStateWriter creates a raw writer on the given connection
// or transaction.
func NewGormDerivedStateWriter(db *gorm.DB) *GormDerivedStateWriter {
	return &GormDerivedStateWriter{db: db}
}

// WriteDerivedState writes exactly the derived columns of the order row.
func (w *GormDerivedStateWriter) WriteDerivedState(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	result := w.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", o.ID().Bytes()).
		UpdateColumns(map[string]any{
			"item_total":       o.ItemTotal().Amount(),
			"shipment_total":   o.ShipmentTotal().Amount(),
			"adjustment_total": o.AdjustmentTotal().Amount(),
			"payment_total":    o.PaymentTotal().Amount(),
			"total":            o.Total().Amount(),
			"payment_state":    o.PaymentState().String(),
			"shipment_state":   o.ShipmentState().String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
