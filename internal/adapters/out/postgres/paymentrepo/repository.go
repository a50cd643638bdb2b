package paymentrepo

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
// Payments are immutable once recorded; the repository exposes no update.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add saves a new payment belonging to an order.
func (r *GormPaymentRepository) Add(ctx context.Context, orderID kernel.UUID, payment *order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID, payment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves an order's payments ordered by creation time,
// oldest first, so the last element is the most recent payment.
func (r *GormPaymentRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*order.Payment, 0, len(dtos))
	for _, dto := range dtos {
		payment, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
