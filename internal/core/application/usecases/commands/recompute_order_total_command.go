package commands

import (
	"context"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/guard"
)

var ErrRecomputeOrderTotalCommandIsNotConstructed = errors.New(
	"RecomputeOrderTotalCommand must be created via NewRecomputeOrderTotalCommand constructor",
)

// RecomputeOrderTotalCommand re-derives total_amount from the stored items.
type RecomputeOrderTotalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecomputeOrderTotalCommand(orderID kernel.UUID) (RecomputeOrderTotalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecomputeOrderTotalCommand{}, err
	}

	return RecomputeOrderTotalCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecomputeOrderTotalCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeOrderTotalCommandIsNotConstructed)
}

func (c RecomputeOrderTotalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// recomputeLocked sums the items of an order already locked by the caller and
// writes total_amount when it changed. Other order columns are never written.
func recomputeLocked(
	ctx context.Context,
	calculator services.OrderTotalCalculator,
	orderRepo ports.OrderRepository,
	itemRepo ports.OrderItemRepository,
	o *order.Order,
	now time.Time,
) error {
	items, err := itemRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	changed, err := calculator.Recalculate(o, items, now)
	if err != nil || !changed {
		return err
	}

	return orderRepo.UpdateTotal(ctx, o)
}
