package shipmentrepo

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment belonging to an order.
func (r *GormShipmentRepository) Add(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID, shipment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves status changes to an existing shipment, including the
// self-update transitions made during recalculation.
func (r *GormShipmentRepository) Update(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID, shipment)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("cost", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetAllForOrder retrieves an order's shipments.
func (r *GormShipmentRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*order.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		shipment, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}
