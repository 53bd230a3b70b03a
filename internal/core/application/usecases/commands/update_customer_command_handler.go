package commands

import (
	"context"
)

// UpdateCustomerCommandHandler applies a profile change and refreshes updated_on.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      Clock
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory, clock Clock) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	p := cmd.Profile()
	if err = c.UpdateProfile(p.FirstName, p.LastName, p.Mobile, p.Email, h.clock()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
