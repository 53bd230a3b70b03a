package commands_test

import (
	"errors"
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectCancel queues one unit of work for a single order.
func expectCancel(t *testing.T, factory *MockUoWFactory, o *order.Order, writes bool) *MockOrderRepository {
	t.Helper()
	ctx := t.Context()

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	if writes {
		orders.On("UpdateStatus", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	factory.On("Create").Return(uow).Once()

	return orders
}

func TestNewCancelOrdersCommand(t *testing.T) {
	t.Run("should require at least one order", func(t *testing.T) {
		_, err := commands.NewCancelOrdersCommand()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should collapse duplicates keeping order", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCancelOrdersCommand(a, b, a)

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{a, b}, cmd.OrderIDs())
	})

	t.Run("should reject nil id", func(t *testing.T) {
		_, err := commands.NewCancelOrdersCommand(kernel.NewUUID(), kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestCancelOrdersCommandHandler_Handle_MixedBatch(t *testing.T) {
	active := restoreOrder(t, order.Active, "10.00")
	completed := restoreOrder(t, order.Completed, "20.00")
	canceled := restoreOrder(t, order.Canceled, "30.00")

	factory := new(MockUoWFactory)
	activeRepo := expectCancel(t, factory, active, true)
	completedRepo := expectCancel(t, factory, completed, false)
	canceledRepo := expectCancel(t, factory, canceled, false)

	cmd, err := commands.NewCancelOrdersCommand(active.ID(), completed.ID(), canceled.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrdersCommandHandler(lifecycleUoWFactory{factory}, fixedClock())
	results, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, order.OutcomeCanceled, results[0].Outcome)
	assert.Equal(t, order.OutcomeRejectedAlreadyCompleted, results[1].Outcome)
	assert.Equal(t, order.OutcomeAlreadyCanceled, results[2].Outcome)
	for i, r := range results {
		require.NoError(t, r.Err, i)
	}

	assert.Equal(t, order.Canceled, active.Status())
	assert.Equal(t, order.Completed, completed.Status())
	assert.Equal(t, order.Canceled, canceled.Status())
	assert.Equal(t, "10.00", active.Total().String())

	activeRepo.AssertExpectations(t)
	completedRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	canceledRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}

func TestCancelOrdersCommandHandler_Handle_Idempotent(t *testing.T) {
	o := restoreOrder(t, order.Active, "10.00")

	factory := new(MockUoWFactory)
	expectCancel(t, factory, o, true)
	expectCancel(t, factory, o, false)

	cmd, _ := commands.NewCancelOrdersCommand(o.ID())
	h := commands.NewCancelOrdersCommandHandler(lifecycleUoWFactory{factory}, fixedClock())

	first, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	second, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	assert.Equal(t, order.OutcomeCanceled, first[0].Outcome)
	assert.Equal(t, order.OutcomeAlreadyCanceled, second[0].Outcome)
	assert.Equal(t, order.Canceled, o.Status())
}

func TestCancelOrdersCommandHandler_Handle_PerOrderFailures(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	active := restoreOrder(t, order.Active, "10.00")
	broken := restoreOrder(t, order.Active, "10.00")

	factory := new(MockUoWFactory)

	missingRepo := new(MockOrderRepository)
	missingUoW := new(MockUoW)
	missingUoW.On("Begin", ctx).Return(nil).Once()
	missingUoW.On("OrderRepository").Return(missingRepo).Once()
	missingRepo.On("GetForUpdate", ctx, missingID).Return(nil, errs.NewObjectNotFoundError("order", missingID)).Once()
	missingUoW.On("Rollback", ctx).Return(nil).Once()
	factory.On("Create").Return(missingUoW).Once()

	brokenRepo := new(MockOrderRepository)
	brokenUoW := new(MockUoW)
	brokenUoW.On("Begin", ctx).Return(nil).Once()
	brokenUoW.On("OrderRepository").Return(brokenRepo).Once()
	brokenRepo.On("GetForUpdate", ctx, broken.ID()).Return(broken, nil).Once()
	brokenRepo.On("UpdateStatus", ctx, broken).Return(errs.NewPersistenceError("update order status", errors.New("deadlock"))).Once()
	brokenUoW.On("Rollback", ctx).Return(nil).Once()
	factory.On("Create").Return(brokenUoW).Once()

	expectCancel(t, factory, active, true)

	cmd, _ := commands.NewCancelOrdersCommand(missingID, broken.ID(), active.ID())
	h := commands.NewCancelOrdersCommandHandler(lifecycleUoWFactory{factory}, fixedClock())
	results, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, errs.IsNotFound(results[0].Err))
	assert.Equal(t, order.OutcomeUnknown, results[0].Outcome)
	assert.True(t, errs.IsPersistence(results[1].Err))
	require.NoError(t, results[2].Err)
	assert.Equal(t, order.OutcomeCanceled, results[2].Outcome)
	brokenUoW.AssertNotCalled(t, "Commit", mock.Anything)
}
