package commands

import (
	"context"
)

type ChangeProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewChangeProductPriceCommandHandler(uowFactory ProductUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) error {
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = repo.UpdatePrice(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
