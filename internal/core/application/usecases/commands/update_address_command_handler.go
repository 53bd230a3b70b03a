package commands

import (
	"context"
)

// UpdateAddressCommandHandler rewrites address fields. Owner and disabled state
// are not editable, so disabled addresses can still be corrected.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	repo := uow.AddressRepository()
	address, err := repo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if err = address.ChangeDetails(cmd.Details()); err != nil {
		return err
	}

	if err = repo.UpdateDetails(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
