package commands

import (
	"context"

	"ecommerce/internal/core/domain/services"
)

// RecomputeOrderTotalCommandHandler sums line items under the order lock and
// stores the result. An order without items gets 0.00. Running it twice in a row
// leaves the total unchanged.
type RecomputeOrderTotalCommandHandler struct {
	uowFactory OrderItemUoWFactory
	calculator services.OrderTotalCalculator
	clock      Clock
}

func NewRecomputeOrderTotalCommandHandler(
	uowFactory OrderItemUoWFactory,
	calculator services.OrderTotalCalculator,
	clock Clock,
) RecomputeOrderTotalCommandHandler {
	return RecomputeOrderTotalCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		clock:      clock,
	}
}

func (h *RecomputeOrderTotalCommandHandler) Handle(ctx context.Context, cmd RecomputeOrderTotalCommand) error {
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

	if err = recomputeLocked(ctx, h.calculator, orderRepo, uow.OrderItemRepository(), o, h.clock()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
