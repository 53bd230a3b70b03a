package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"
)

// AddOrUpdateItemCommandHandler writes an order line and recomputes the order total.
//
// The whole operation runs in one transaction holding a row lock on the order:
//  1. lock the order
//  2. load the product and write the item with price × quantity
//  3. list the items and write total_amount only
//
// A failure at any step rolls back both writes, so the stored total always equals
// the sum of the stored items.
type AddOrUpdateItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
	calculator services.OrderTotalCalculator
	clock      Clock
}

func NewAddOrUpdateItemCommandHandler(
	uowFactory OrderItemUoWFactory,
	calculator services.OrderTotalCalculator,
	clock Clock,
) AddOrUpdateItemCommandHandler {
	return AddOrUpdateItemCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		clock:      clock,
	}
}

func (h *AddOrUpdateItemCommandHandler) Handle(ctx context.Context, cmd AddOrUpdateItemCommand) error {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	now := h.clock()
	itemRepo := uow.OrderItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemID())
	switch {
	case errs.IsNotFound(err):
		if item, err = order.NewItem(cmd.ItemID(), o.ID(), p, cmd.Quantity(), now); err != nil {
			return err
		}
		if err = itemRepo.Add(ctx, item); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if !item.OrderID().IsEqual(o.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("item_id", services.ErrItemOfAnotherOrder)
		}
		if err = item.Reprice(p, cmd.Quantity()); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = recomputeLocked(ctx, h.calculator, orderRepo, itemRepo, o, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
