package commands_test

import (
	"context"
	"time"

	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
	"orderstate/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetTouchedSince(ctx context.Context, since time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, orderID kernel.UUID, payment *order.Payment) error {
	args := m.Called(ctx, orderID, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Payment), args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, orderID kernel.UUID, lineItem *order.LineItem) error {
	args := m.Called(ctx, orderID, lineItem)
	return args.Error(0)
}

func (m *MockLineItemRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.LineItem), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error {
	args := m.Called(ctx, orderID, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, orderID kernel.UUID, shipment *order.Shipment) error {
	args := m.Called(ctx, orderID, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Shipment), args.Error(1)
}

type MockDerivedStateWriter struct{ mock.Mock }

func (m *MockDerivedStateWriter) WriteDerivedState(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockStateChangeSink struct{ mock.Mock }

func (m *MockStateChangeSink) StateChanged(ctx context.Context, orderID kernel.UUID, change order.StateChange) {
	m.Called(ctx, orderID, change)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) DerivedStateWriter() ports.DerivedStateWriter {
	args := m.Called()
	return args.Get(0).(ports.DerivedStateWriter)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// uowFixture wires a MockUoW whose repositories return the given children
// and whose raw writer accepts the flush. Used by every handler test that
// exercises the recalculation path.
type uowFixture struct {
	uow          *MockUoW
	factory      *MockUoWFactory
	orderRepo    *MockOrderRepository
	paymentRepo  *MockPaymentRepository
	lineItemRepo *MockLineItemRepository
	shipmentRepo *MockShipmentRepository
	writer       *MockDerivedStateWriter
	sink         *MockStateChangeSink
}

func newUoWFixture() *uowFixture {
	f := &uowFixture{
		uow:          new(MockUoW),
		factory:      new(MockUoWFactory),
		orderRepo:    new(MockOrderRepository),
		paymentRepo:  new(MockPaymentRepository),
		lineItemRepo: new(MockLineItemRepository),
		shipmentRepo: new(MockShipmentRepository),
		writer:       new(MockDerivedStateWriter),
		sink:         new(MockStateChangeSink),
	}
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

// expectRecalculation registers the child reads, raw flush and shipment
// writes the recalculation helper performs against an order with the
// given children.
func (f *uowFixture) expectRecalculation(orderID kernel.UUID, children order.Children) {
	f.uow.On("PaymentRepository").Return(f.paymentRepo)
	f.uow.On("LineItemRepository").Return(f.lineItemRepo)
	f.uow.On("ShipmentRepository").Return(f.shipmentRepo)
	f.uow.On("DerivedStateWriter").Return(f.writer)

	f.paymentRepo.On("GetAllForOrder", mock.Anything, orderID).Return(children.Payments, nil)
	f.lineItemRepo.On("GetAllForOrder", mock.Anything, orderID).Return(children.LineItems, nil)
	f.shipmentRepo.On("GetAllForOrder", mock.Anything, orderID).Return(children.Shipments, nil)
	f.writer.On("WriteDerivedState", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)
	for _, shipment := range children.Shipments {
		f.shipmentRepo.On("Update", mock.Anything, orderID, shipment).Return(nil)
	}
	f.sink.On("StateChanged", mock.Anything, orderID, mock.AnythingOfType("order.StateChange")).Return().Maybe()
}
