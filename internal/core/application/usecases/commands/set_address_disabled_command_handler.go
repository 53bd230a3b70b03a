package commands

import (
	"context"
)

// SetAddressDisabledCommandHandler applies the soft-disable toggle.
//
// Disabling an already disabled address keeps the original timestamp and
// performs no write; the same holds for enabling an active address.
type SetAddressDisabledCommandHandler struct {
	uowFactory AddressUoWFactory
	clock      Clock
}

func NewSetAddressDisabledCommandHandler(uowFactory AddressUoWFactory, clock Clock) SetAddressDisabledCommandHandler {
	return SetAddressDisabledCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *SetAddressDisabledCommandHandler) Handle(ctx context.Context, cmd SetAddressDisabledCommand) error {
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

	if !address.SetDisabled(cmd.Disabled(), h.clock()) {
		return nil
	}

	if err = repo.UpdateDisabled(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
