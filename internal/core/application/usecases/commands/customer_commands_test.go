package commands_test

import (
	"errors"
	"testing"
	"time"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand(t *testing.T) {
	t.Run("should require customer id", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(kernel.UUID{}, validProfile())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject literal command", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateCustomerCommand{}.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, validProfile())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID().IsEqual(id) && c.CreatedOn().Equal(fixedNow)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(customerUoWFactory{factory}, fixedClock())
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_InvalidProfile(t *testing.T) {
	profile := validProfile()
	profile.Mobile = "123"
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), profile)
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(customerUoWFactory{factory}, fixedClock())

	err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCustomerCommand(kernel.NewUUID(), validProfile())

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	duplicate := errs.NewValueIsNotUniqueError("email", "ada@example.com")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(customerUoWFactory{factory}, fixedClock())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsNotUnique)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("should update profile and refresh timestamp", func(t *testing.T) {
		ctx := t.Context()
		existing := newCustomer(t)
		profile := validProfile()
		profile.LastName = "King"
		cmd, err := commands.NewUpdateCustomerCommand(existing.ID(), profile)
		require.NoError(t, err)

		later := fixedNow.Add(9 * time.Hour)
		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomerRepository").Return(repo).Once(),
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCustomerCommandHandler(customerUoWFactory{factory}, func() time.Time { return later })
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, "King", existing.LastName())
		assert.Equal(t, later, existing.UpdatedOn())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpdateCustomerCommand(id, validProfile())

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("customer", id)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCustomerCommandHandler(customerUoWFactory{factory}, fixedClock())
		err := h.Handle(ctx, cmd)

		require.True(t, errs.IsNotFound(err))
		uow.AssertExpectations(t)
	})

	t.Run("should surface begin error", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewUpdateCustomerCommand(kernel.NewUUID(), validProfile())

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCustomerCommandHandler(customerUoWFactory{factory}, fixedClock())
		require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	})
}
