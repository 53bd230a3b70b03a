package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/customer"
)

// AddAddressCommandHandler checks the customer exists and stores the new address.
type AddAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	clock      Clock
}

func NewAddAddressCommandHandler(uowFactory AddressUoWFactory, clock Clock) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := customer.NewAddress(cmd.AddressID(), cmd.CustomerID(), cmd.Details(), h.clock())
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

	if _, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.AddressRepository().Add(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
