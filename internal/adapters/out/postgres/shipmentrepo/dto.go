// Package shipmentrepo persists an order's shipments.
package shipmentrepo

import (
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for shipment records.
type ShipmentDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;index"`
	Cost    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status  int
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(orderID kernel.UUID, shipment *order.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:      shipment.ID().Bytes(),
		OrderID: orderID.Bytes(),
		Cost:    shipment.Cost().Amount(),
		Status:  int(shipment.Status()),
	}
}

func toDomain(dto ShipmentDTO) (*order.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreShipment(
		id,
		kernel.NewMoneyFromDecimal(dto.Cost),
		order.ShipmentStatus(dto.Status),
	)
}
