package cmd

import (
	"log/slog"

	httpin "ecommerce/internal/adapters/in/http"
	"ecommerce/internal/adapters/out/postgres"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.OrderTotalCalculator
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewOrderTotalCalculator(),
		clock:      commands.SystemClock(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	h := commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() *commands.AddAddressCommandHandler {
	h := commands.NewAddAddressCommandHandler(c.addressUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateSetAddressDisabledCommandHandler() *commands.SetAddressDisabledCommandHandler {
	h := commands.NewSetAddressDisabledCommandHandler(c.addressUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() *commands.UpdateAddressCommandHandler {
	h := commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	h := commands.NewUpdateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() *commands.ChangeProductPriceCommandHandler {
	h := commands.NewChangeProductPriceCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.clock)
	return &h
}

func (c *CompositionRoot) CreateAddOrUpdateItemCommandHandler() *commands.AddOrUpdateItemCommandHandler {
	h := commands.NewAddOrUpdateItemCommandHandler(c.orderItemUoWFactory(), c.calculator, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() *commands.RemoveItemCommandHandler {
	h := commands.NewRemoveItemCommandHandler(c.orderItemUoWFactory(), c.calculator, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRecomputeOrderTotalCommandHandler() *commands.RecomputeOrderTotalCommandHandler {
	h := commands.NewRecomputeOrderTotalCommandHandler(c.orderItemUoWFactory(), c.calculator, c.clock)
	return &h
}

func (c *CompositionRoot) CreateCancelOrdersCommandHandler() *commands.CancelOrdersCommandHandler {
	h := commands.NewCancelOrdersCommandHandler(c.orderLifecycleUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() *commands.CompleteOrderCommandHandler {
	h := commands.NewCompleteOrderCommandHandler(c.orderLifecycleUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.CreateGorm()
	})
	h := commands.NewRelayOutboxCommandHandler(f, publisher, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressQueryHandler() queries.GetAddressQueryHandler {
	return queries.NewGetAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderItemsQueryHandler() queries.ListOrderItemsQueryHandler {
	return queries.NewListOrderItemsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCustomer:      c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:      c.CreateUpdateCustomerCommandHandler(),
		AddAddress:          c.CreateAddAddressCommandHandler(),
		UpdateAddress:       c.CreateUpdateAddressCommandHandler(),
		SetAddressDisabled:  c.CreateSetAddressDisabledCommandHandler(),
		CreateProduct:       c.CreateCreateProductCommandHandler(),
		UpdateProduct:       c.CreateUpdateProductCommandHandler(),
		ChangeProductPrice:  c.CreateChangeProductPriceCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AddOrUpdateItem:     c.CreateAddOrUpdateItemCommandHandler(),
		RemoveItem:          c.CreateRemoveItemCommandHandler(),
		RecomputeOrderTotal: c.CreateRecomputeOrderTotalCommandHandler(),
		CancelOrders:        c.CreateCancelOrdersCommandHandler(),
		CompleteOrder:       c.CreateCompleteOrderCommandHandler(),

		GetCustomer:    c.CreateGetCustomerQueryHandler(),
		GetAddress:     c.CreateGetAddressQueryHandler(),
		ListAddresses:  c.CreateListAddressesQueryHandler(),
		GetProduct:     c.CreateGetProductQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		ListOrderItems: c.CreateListOrderItemsQueryHandler(),
	}, c.logger)
}

// CreateOutboxRelayJob returns a nil Job when there is no publisher; JobManager skips it.
func (c *CompositionRoot) CreateOutboxRelayJob(publisher ports.EventPublisher) jobs.Job {
	if publisher == nil {
		return nil
	}
	return jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.config.OutboxRelaySchedule,
		c.config.OutboxBatchSize,
		c.logger,
	)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderItemUoWFactory() commands.OrderItemUoWFactory {
	return FuncOrderItemUoWFactory(func() commands.OrderItemUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderLifecycleUoWFactory() commands.OrderLifecycleUoWFactory {
	return FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.CreateGorm()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderItemUoWFactory func() commands.OrderItemUoW

func (f FuncOrderItemUoWFactory) Create() commands.OrderItemUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
