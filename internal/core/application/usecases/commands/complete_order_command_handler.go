package commands

import (
	"context"
)

// CompleteOrderCommandHandler moves an active order to completed.
// Completed or canceled orders are rejected with a validation error.
type CompleteOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	clock      Clock
}

func NewCompleteOrderCommandHandler(uowFactory OrderLifecycleUoWFactory, clock Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(h.clock()); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
