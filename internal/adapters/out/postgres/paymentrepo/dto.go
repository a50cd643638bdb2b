// Package paymentrepo persists an order's payment records.
package paymentrepo

import (
	"time"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for payment records.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(orderID kernel.UUID, payment *order.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        payment.ID().Bytes(),
		OrderID:   orderID.Bytes(),
		Amount:    payment.Amount().Amount(),
		Status:    int(payment.Status()),
		CreatedAt: payment.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestorePayment(
		id,
		kernel.NewMoneyFromDecimal(dto.Amount),
		order.PaymentStatus(dto.Status),
		dto.CreatedAt,
	)
}
