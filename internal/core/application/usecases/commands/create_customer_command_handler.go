package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler persists a new customer.
// A duplicate mobile or email surfaces as errs.ValueIsNotUniqueError from the repository.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clock Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Profile()
	c, err := customer.NewCustomer(cmd.CustomerID(), p.FirstName, p.LastName, p.Mobile, p.Email, h.clock())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
