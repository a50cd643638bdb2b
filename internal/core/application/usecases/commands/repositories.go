// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and — for every operation that
// mutates a child record — recalculation of the order's derived state
// inside the same transaction.
package commands

import (
	"context"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/core/domain/services"
	"orderstate/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW manages transactions across the order aggregate and its child
	// collections. Every command handler uses the full unit of work because
	// each child mutation ends in a recalculation that reads all children
	// and flushes derived state through the raw writer.
	UoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
		PaymentRepository() ports.PaymentRepository
		LineItemRepository() ports.LineItemRepository
		ShipmentRepository() ports.ShipmentRepository
		DerivedStateWriter() ports.DerivedStateWriter
	}

	// UoWFactory creates new unit of work instances per command.
	UoWFactory interface {
		Create() UoW
	}
)

// loadChildren reads the order's current child snapshot within the caller's
// transaction, so recalculation observes the same records the command mutated.
func loadChildren(ctx context.Context, uow UoW, orderID kernel.UUID) (order.Children, error) {
	payments, err := uow.PaymentRepository().GetAllForOrder(ctx, orderID)
	if err != nil {
		return order.Children{}, err
	}

	lineItems, err := uow.LineItemRepository().GetAllForOrder(ctx, orderID)
	if err != nil {
		return order.Children{}, err
	}

	shipments, err := uow.ShipmentRepository().GetAllForOrder(ctx, orderID)
	if err != nil {
		return order.Children{}, err
	}

	return order.Children{
		Payments:  payments,
		LineItems: lineItems,
		Shipments: shipments,
	}, nil
}

// recalculateOrder runs the recalculation engine against the order's current
// child snapshot and persists any shipment self-update transitions, all
// inside the caller's transaction.
func recalculateOrder(ctx context.Context, uow UoW, sink ports.StateChangeSink, o *order.Order) error {
	children, err := loadChildren(ctx, uow, o.ID())
	if err != nil {
		return err
	}

	recalculator := services.NewRecalculator(uow.DerivedStateWriter(), sink)
	if err = recalculator.Recalculate(ctx, o, children); err != nil {
		return err
	}

	// Shipment statuses may have moved during self-update; persist them so
	// the next snapshot reads what classification saw.
	shipmentRepo := uow.ShipmentRepository()
	for _, shipment := range children.Shipments {
		if err = shipmentRepo.Update(ctx, o.ID(), shipment); err != nil {
			return err
		}
	}

	return nil
}
