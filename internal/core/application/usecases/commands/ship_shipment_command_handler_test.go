package commands_test

import (
	"testing"

	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewShipShipmentCommand(orderID, shipmentID)
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)
	shipment, err := order.NewShipment(shipmentID, paidAmount(t, "5.00"))
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.orderRepo.On("Get", mock.Anything, orderID).Return(orderEntity, nil).Once()
	f.expectRecalculation(orderID, order.Children{Shipments: []*order.Shipment{shipment}})

	h := commands.NewShipShipmentCommandHandler(f.factory, f.sink)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.ShipmentStatusShipped, shipment.Status())
	f.uow.AssertExpectations(t)
}

func TestShipShipmentCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewShipShipmentCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(orderID)
	require.NoError(t, err)
	other, err := order.NewShipment(kernel.NewUUID(), paidAmount(t, "5.00"))
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("ShipmentRepository").Return(f.shipmentRepo)
	f.orderRepo.On("Get", mock.Anything, orderID).Return(orderEntity, nil).Once()
	f.shipmentRepo.On("GetAllForOrder", mock.Anything, orderID).
		Return([]*order.Shipment{other}, nil).Once()

	h := commands.NewShipShipmentCommandHandler(f.factory, f.sink)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestShipShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	f := newUoWFixture()
	h := commands.NewShipShipmentCommandHandler(f.factory, f.sink)
	err := h.Handle(ctx, commands.ShipShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrShipShipmentCommandIsNotConstructed)
}
