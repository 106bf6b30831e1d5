package commands_test

import (
	"context"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error) {
	args := m.Called(ctx, tableID, status)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) FindAllByIDIn(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, orderTable *table.OrderTable) error {
	args := m.Called(ctx, orderTable)
	return args.Error(0)
}

type MockCourierClient struct{ mock.Mock }

func (m *MockCourierClient) RequestDelivery(ctx context.Context, orderID kernel.UUID, amount int64, deliveryAddress string) error {
	args := m.Called(ctx, orderID, amount, deliveryAddress)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
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

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testLineItems(t *testing.T, menuID kernel.UUID, quantity int64, amount int64) []order.LineItem {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	item, err := order.NewLineItem(menuID, quantity, price)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func restoreOrder(t *testing.T, orderType order.Type, status order.Status, address string, tableID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), orderType, status, testLineItems(t, kernel.NewUUID(), 1, 120000), address, tableID, 1)
	require.NoError(t, err)
	return o
}
