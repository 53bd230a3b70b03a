package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"ecommerce/cmd"
	"ecommerce/internal/adapters/out/postgres/pgtest"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []ports.OutboxMessage
}

func (p *recordingPublisher) Publish(_ context.Context, msg ports.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) eventNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.messages))
	for i, msg := range p.messages {
		names[i] = msg.EventName
	}
	return names
}

// ScenarioTestSuite drives the wired use cases end to end against PostgreSQL.
type ScenarioTestSuite struct {
	suite.Suite
	database *pgtest.Database
	app      cmd.CompositionRoot

	customerID kernel.UUID
	addressID  kernel.UUID
	pencilID   kernel.UUID
	notebookID kernel.UUID
}

func (suite *ScenarioTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	config := cmd.Config{OutboxRelaySchedule: "@every 1h", OutboxBatchSize: 50}
	suite.app = cmd.NewCompositionRoot(config, database.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *ScenarioTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ScenarioTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	ctx := context.Background()

	suite.customerID = kernel.NewUUID()
	createCustomer, err := commands.NewCreateCustomerCommand(suite.customerID, commands.CustomerProfile{
		FirstName: "Asha",
		LastName:  "Verma",
		Mobile:    "9876543210",
		Email:     "asha@example.com",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateCreateCustomerCommandHandler().Handle(ctx, createCustomer))

	suite.addressID = kernel.NewUUID()
	addAddress, err := commands.NewAddAddressCommand(suite.addressID, suite.customerID, customer.AddressDetails{
		Name:    "Asha Verma",
		Phone:   "9876543210",
		Line1:   "12 MG Road",
		Pincode: "560001",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateAddAddressCommandHandler().Handle(ctx, addAddress))

	suite.pencilID = suite.createProduct("Pencil", "9.99")
	suite.notebookID = suite.createProduct("Notebook", "5.00")
}

func (suite *ScenarioTestSuite) TestLineItemsDriveOrderTotal() {
	orderID := suite.createOrder(suite.addressID)
	suite.Equal("0.00", suite.getOrder(orderID).TotalAmount.String())

	pencilLine := kernel.NewUUID()
	suite.putItem(orderID, pencilLine, suite.pencilID, 3)
	suite.Equal("29.97", suite.getOrder(orderID).TotalAmount.String())

	suite.putItem(orderID, kernel.NewUUID(), suite.notebookID, 1)
	view := suite.getOrder(orderID)
	suite.Equal("34.97", view.TotalAmount.String())
	suite.Equal(2, view.ItemCount)

	suite.putItem(orderID, pencilLine, suite.pencilID, 1)
	suite.Equal("14.99", suite.getOrder(orderID).TotalAmount.String())

	_, err := commands.NewAddOrUpdateItemCommand(orderID, kernel.NewUUID(), suite.pencilID, 0)
	suite.True(errs.IsValidation(err))
	suite.Equal("14.99", suite.getOrder(orderID).TotalAmount.String())
}

func (suite *ScenarioTestSuite) TestCancelLeavesTotalUntouched() {
	ctx := context.Background()
	orderID := suite.createOrder(suite.addressID)
	suite.putItem(orderID, kernel.NewUUID(), suite.pencilID, 3)
	suite.putItem(orderID, kernel.NewUUID(), suite.notebookID, 1)

	handler := suite.app.CreateCancelOrdersCommandHandler()
	cancel, err := commands.NewCancelOrdersCommand(orderID)
	suite.Require().NoError(err)

	results, err := handler.Handle(ctx, cancel)
	suite.Require().NoError(err)
	suite.Equal(order.OutcomeCanceled, results[0].Outcome)
	view := suite.getOrder(orderID)
	suite.Equal(order.Canceled, view.Status)
	suite.Equal("34.97", view.TotalAmount.String())

	results, err = handler.Handle(ctx, cancel)
	suite.Require().NoError(err)
	suite.Equal(order.OutcomeAlreadyCanceled, results[0].Outcome)
	suite.Equal("34.97", suite.getOrder(orderID).TotalAmount.String())

	recompute, err := commands.NewRecomputeOrderTotalCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateRecomputeOrderTotalCommandHandler().Handle(ctx, recompute))
	suite.Require().NoError(suite.app.CreateRecomputeOrderTotalCommandHandler().Handle(ctx, recompute))
	suite.Equal("34.97", suite.getOrder(orderID).TotalAmount.String())
}

func (suite *ScenarioTestSuite) TestItemPricesAreSnapshots() {
	ctx := context.Background()
	orderID := suite.createOrder(suite.addressID)
	suite.putItem(orderID, kernel.NewUUID(), suite.pencilID, 2)

	changePrice, err := commands.NewChangeProductPriceCommand(suite.pencilID, kernel.MustNewMoney("20.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateChangeProductPriceCommandHandler().Handle(ctx, changePrice))

	recompute, err := commands.NewRecomputeOrderTotalCommand(orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateRecomputeOrderTotalCommandHandler().Handle(ctx, recompute))
	suite.Equal("19.98", suite.getOrder(orderID).TotalAmount.String())

	listItems, err := queries.NewListOrderItemsQuery(orderID)
	suite.Require().NoError(err)
	items, err := suite.app.CreateListOrderItemsQueryHandler().Handle(ctx, listItems)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("9.99", items[0].UnitPrice.String())
	suite.Equal("19.98", items[0].TotalPrice.String())
}

func (suite *ScenarioTestSuite) TestCancelIsIdempotentAndBatchSafe() {
	ctx := context.Background()
	active := suite.createOrder(suite.addressID)
	toCancel := suite.createOrder(suite.addressID)
	completed := suite.createOrder(suite.addressID)

	complete, err := commands.NewCompleteOrderCommand(completed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateCompleteOrderCommandHandler().Handle(ctx, complete))

	handler := suite.app.CreateCancelOrdersCommandHandler()

	first, err := commands.NewCancelOrdersCommand(toCancel)
	suite.Require().NoError(err)
	results, err := handler.Handle(ctx, first)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(order.OutcomeCanceled, results[0].Outcome)

	results, err = handler.Handle(ctx, first)
	suite.Require().NoError(err)
	suite.Equal(order.OutcomeAlreadyCanceled, results[0].Outcome)

	missing := kernel.NewUUID()
	batch, err := commands.NewCancelOrdersCommand(active, toCancel, completed, missing)
	suite.Require().NoError(err)
	results, err = handler.Handle(ctx, batch)
	suite.Require().NoError(err)
	suite.Require().Len(results, 4)
	suite.Equal(order.OutcomeCanceled, results[0].Outcome)
	suite.Equal(order.OutcomeAlreadyCanceled, results[1].Outcome)
	suite.Equal(order.OutcomeRejectedAlreadyCompleted, results[2].Outcome)
	suite.True(errs.IsNotFound(results[3].Err))

	suite.Equal(order.Canceled, suite.getOrder(active).Status)
	suite.Equal(order.Completed, suite.getOrder(completed).Status)
}

func (suite *ScenarioTestSuite) TestDisabledAddressCannotTakeNewOrders() {
	ctx := context.Background()
	handler := suite.app.CreateSetAddressDisabledCommandHandler()

	disable, err := commands.NewSetAddressDisabledCommand(suite.addressID, true)
	suite.Require().NoError(err)
	suite.Require().NoError(handler.Handle(ctx, disable))

	create, err := commands.NewCreateOrderCommand(kernel.NewUUID(), suite.customerID, suite.addressID)
	suite.Require().NoError(err)
	err = suite.app.CreateCreateOrderCommandHandler().Handle(ctx, create)
	suite.True(errs.IsValidation(err))

	list, err := queries.NewListAddressesQuery(suite.customerID, false)
	suite.Require().NoError(err)
	addresses, err := suite.app.CreateListAddressesQueryHandler().Handle(ctx, list)
	suite.Require().NoError(err)
	suite.Empty(addresses)

	enable, err := commands.NewSetAddressDisabledCommand(suite.addressID, false)
	suite.Require().NoError(err)
	suite.Require().NoError(handler.Handle(ctx, enable))
	suite.createOrder(suite.addressID)
}

func (suite *ScenarioTestSuite) TestRelayForwardsLifecycleEvents() {
	ctx := context.Background()
	orderID := suite.createOrder(suite.addressID)
	suite.putItem(orderID, kernel.NewUUID(), suite.notebookID, 2)

	cancel, err := commands.NewCancelOrdersCommand(orderID)
	suite.Require().NoError(err)
	_, err = suite.app.CreateCancelOrdersCommandHandler().Handle(ctx, cancel)
	suite.Require().NoError(err)

	publisher := &recordingPublisher{}
	relay := suite.app.CreateRelayOutboxCommandHandler(publisher)
	relayCmd, err := commands.NewRelayOutboxCommand(50)
	suite.Require().NoError(err)

	report, err := relay.Handle(ctx, relayCmd)
	suite.Require().NoError(err)
	suite.Equal(2, report.Published)
	suite.Equal(0, report.Failed)
	suite.ElementsMatch([]string{order.EventTotalChanged, order.EventCanceled}, publisher.eventNames())

	report, err = relay.Handle(ctx, relayCmd)
	suite.Require().NoError(err)
	suite.Zero(report.Published)

	suite.NotNil(suite.app.CreateOutboxRelayJob(publisher))
	suite.Nil(suite.app.CreateOutboxRelayJob(nil))
}

func (suite *ScenarioTestSuite) TestConcurrentItemWritesAreAllCounted() {
	const writers = 8
	orderID := suite.createOrder(suite.addressID)

	var wg sync.WaitGroup
	results := make([]error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			put, err := commands.NewAddOrUpdateItemCommand(orderID, kernel.NewUUID(), suite.notebookID, 1)
			if err == nil {
				err = suite.app.CreateAddOrUpdateItemCommandHandler().Handle(context.Background(), put)
			}
			results[i] = err
		}()
	}
	wg.Wait()

	for _, err := range results {
		suite.Require().NoError(err)
	}

	view := suite.getOrder(orderID)
	suite.Equal(writers, view.ItemCount)
	suite.Equal("40.00", view.TotalAmount.String())
	suite.Equal(view.TotalAmount.String(), suite.sumOfItems(orderID).String())
}

func (suite *ScenarioTestSuite) TestRemovingItemRecomputesTotal() {
	ctx := context.Background()
	orderID := suite.createOrder(suite.addressID)
	pencilLine := kernel.NewUUID()
	notebookLine := kernel.NewUUID()
	suite.putItem(orderID, pencilLine, suite.pencilID, 3)
	suite.putItem(orderID, notebookLine, suite.notebookID, 1)

	handler := suite.app.CreateRemoveItemCommandHandler()
	remove, err := commands.NewRemoveItemCommand(orderID, pencilLine)
	suite.Require().NoError(err)
	suite.Require().NoError(handler.Handle(ctx, remove))

	view := suite.getOrder(orderID)
	suite.Equal("5.00", view.TotalAmount.String())
	suite.Equal(1, view.ItemCount)
	suite.Equal(view.TotalAmount.String(), suite.sumOfItems(orderID).String())

	suite.True(errs.IsNotFound(handler.Handle(ctx, remove)))

	other := suite.createOrder(suite.addressID)
	foreign, err := commands.NewRemoveItemCommand(other, notebookLine)
	suite.Require().NoError(err)
	suite.True(errs.IsValidation(handler.Handle(ctx, foreign)))

	last, err := commands.NewRemoveItemCommand(orderID, notebookLine)
	suite.Require().NoError(err)
	suite.Require().NoError(handler.Handle(ctx, last))
	suite.Equal("0.00", suite.getOrder(orderID).TotalAmount.String())
}

func (suite *ScenarioTestSuite) TestEditingAddressAndProductDetails() {
	ctx := context.Background()
	orderID := suite.createOrder(suite.addressID)
	suite.putItem(orderID, kernel.NewUUID(), suite.pencilID, 2)

	details := customer.AddressDetails{Name: "Asha Verma", Phone: "9123456780", Line1: "7 Brigade Road", Pincode: "560025"}
	updateAddress, err := commands.NewUpdateAddressCommand(suite.addressID, details)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateUpdateAddressCommandHandler().Handle(ctx, updateAddress))

	getAddress, err := queries.NewGetAddressQuery(suite.addressID)
	suite.Require().NoError(err)
	address, err := suite.app.CreateGetAddressQueryHandler().Handle(ctx, getAddress)
	suite.Require().NoError(err)
	suite.Equal("7 Brigade Road", address.Line1)
	suite.Equal("560025", address.Pincode)
	suite.Nil(address.DisabledOn)

	updateProduct, err := commands.NewUpdateProductCommand(suite.pencilID, "HB Pencil", "graphite")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateUpdateProductCommandHandler().Handle(ctx, updateProduct))

	getProduct, err := queries.NewGetProductQuery(suite.pencilID)
	suite.Require().NoError(err)
	product, err := suite.app.CreateGetProductQueryHandler().Handle(ctx, getProduct)
	suite.Require().NoError(err)
	suite.Equal("HB Pencil", product.Name)
	suite.Equal("graphite", product.Description)
	suite.Equal("9.99", product.Price.String())
	suite.Equal("19.98", suite.getOrder(orderID).TotalAmount.String())
}

func (suite *ScenarioTestSuite) sumOfItems(orderID kernel.UUID) kernel.Money {
	query, err := queries.NewListOrderItemsQuery(orderID)
	suite.Require().NoError(err)
	items, err := suite.app.CreateListOrderItemsQueryHandler().Handle(context.Background(), query)
	suite.Require().NoError(err)

	sum := kernel.ZeroMoney()
	for _, item := range items {
		sum, err = sum.Add(item.TotalPrice)
		suite.Require().NoError(err)
	}
	return sum
}

func (suite *ScenarioTestSuite) createProduct(name, price string) kernel.UUID {
	id := kernel.NewUUID()
	create, err := commands.NewCreateProductCommand(id, name, "", kernel.MustNewMoney(price))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateCreateProductCommandHandler().Handle(context.Background(), create))
	return id
}

func (suite *ScenarioTestSuite) createOrder(addressID kernel.UUID) kernel.UUID {
	id := kernel.NewUUID()
	create, err := commands.NewCreateOrderCommand(id, suite.customerID, addressID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateCreateOrderCommandHandler().Handle(context.Background(), create))
	return id
}

func (suite *ScenarioTestSuite) putItem(orderID, itemID, productID kernel.UUID, quantity int) {
	put, err := commands.NewAddOrUpdateItemCommand(orderID, itemID, productID, quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.app.CreateAddOrUpdateItemCommandHandler().Handle(context.Background(), put))
}

func (suite *ScenarioTestSuite) getOrder(id kernel.UUID) queries.OrderView {
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)
	view, err := suite.app.CreateGetOrderQueryHandler().Handle(context.Background(), query)
	suite.Require().NoError(err)
	return view
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
