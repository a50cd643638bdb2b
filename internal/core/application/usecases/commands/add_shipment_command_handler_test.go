package commands_test

import (
	"testing"

	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cost := paidAmount(t, "5.00")
	cmd, err := commands.NewAddShipmentCommand(orderID, kernel.NewUUID(), cost)
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)
	shipment, err := order.NewShipment(cmd.ShipmentID(), cost)
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.orderRepo.On("Get", mock.Anything, orderID).Return(orderEntity, nil).Once()
	f.shipmentRepo.On("Add", mock.Anything, orderID, mock.AnythingOfType("*order.Shipment")).Return(nil).Once()
	f.expectRecalculation(orderID, order.Children{Shipments: []*order.Shipment{shipment}})

	h := commands.NewAddShipmentCommandHandler(f.factory, f.sink)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, orderEntity.ShipmentTotal().IsEqual(cost))
	f.uow.AssertExpectations(t)
	f.shipmentRepo.AssertExpectations(t)
}

func TestAddShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	f := newUoWFixture()
	h := commands.NewAddShipmentCommandHandler(f.factory, f.sink)
	err := h.Handle(ctx, commands.AddShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrAddShipmentCommandIsNotConstructed)
}

func TestNewAddShipmentCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewAddShipmentCommand(kernel.NewUUID(), kernel.UUID{}, paidAmount(t, "5.00"))
	require.Error(t, err)
}
