package commands_test

import (
	"context"
	"time"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() commands.Clock {
	return func() time.Time { return fixedNow }
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *customer.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAddressRepository) UpdateDisabled(ctx context.Context, a *customer.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAddressRepository) UpdateDetails(ctx context.Context, a *customer.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*customer.Address)
	return a, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) UpdatePrice(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) UpdateDetails(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateTotal(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item *order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderItemRepository) Update(ctx context.Context, item *order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*order.Item)
	return item, args.Error(1)
}

func (m *MockOrderItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if fn, ok := args.Get(0).(func() []*order.Item); ok {
		return fn(), args.Error(1)
	}
	items, _ := args.Get(0).([]*order.Item)
	return items, args.Error(1)
}

// MockUoW satisfies every unit-of-work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	return m.Called().Get(0).(ports.AddressRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	return m.Called().Get(0).(ports.OrderItemRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// MockUoWFactory hands out unit-of-work mocks in the order they were queued.
type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) next() *MockUoW {
	return m.MethodCalled("Create").Get(0).(*MockUoW)
}

type customerUoWFactory struct{ *MockUoWFactory }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.next() }

type addressUoWFactory struct{ *MockUoWFactory }

func (f addressUoWFactory) Create() commands.AddressUoW { return f.next() }

type productUoWFactory struct{ *MockUoWFactory }

func (f productUoWFactory) Create() commands.ProductUoW { return f.next() }

type orderUoWFactory struct{ *MockUoWFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.next() }

type orderItemUoWFactory struct{ *MockUoWFactory }

func (f orderItemUoWFactory) Create() commands.OrderItemUoW { return f.next() }

type lifecycleUoWFactory struct{ *MockUoWFactory }

func (f lifecycleUoWFactory) Create() commands.OrderLifecycleUoW { return f.next() }

type outboxUoWFactory struct{ *MockUoWFactory }

func (f outboxUoWFactory) Create() commands.OutboxUoW { return f.next() }
