package commands

import (
	"context"

	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"
)

// RemoveItemCommandHandler deletes an order line and recomputes the order total
// in the same transaction, under the order row lock.
type RemoveItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
	calculator services.OrderTotalCalculator
	clock      Clock
}

func NewRemoveItemCommandHandler(
	uowFactory OrderItemUoWFactory,
	calculator services.OrderTotalCalculator,
	clock Clock,
) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		clock:      clock,
	}
}

func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	itemRepo := uow.OrderItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("item_id", services.ErrItemOfAnotherOrder)
	}

	if err = itemRepo.Remove(ctx, item.ID()); err != nil {
		return err
	}

	if err = recomputeLocked(ctx, h.calculator, orderRepo, itemRepo, o, h.clock()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
