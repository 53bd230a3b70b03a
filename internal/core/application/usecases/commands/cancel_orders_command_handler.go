package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// CancelResult is the per-order result of a cancel request. Err is set only when
// the order could not be processed (not found, storage failure); lifecycle
// rejections are reported through Outcome.
type CancelResult struct {
	OrderID kernel.UUID
	Outcome order.CancelOutcome
	Err     error
}

// CancelOrdersCommandHandler is the single cancel implementation behind both the
// bulk action and the per-order control.
//
// Every order is processed in its own transaction under a row lock, so one failing
// order never blocks the others and a concurrent cancel of the same order observes
// the committed status and reports OutcomeAlreadyCanceled.
type CancelOrdersCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	clock      Clock
}

func NewCancelOrdersCommandHandler(uowFactory OrderLifecycleUoWFactory, clock Clock) CancelOrdersCommandHandler {
	return CancelOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns one result per distinct requested order, in request order.
// The returned error is non-nil only for an invalid command.
func (h *CancelOrdersCommandHandler) Handle(ctx context.Context, cmd CancelOrdersCommand) ([]CancelResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ids := cmd.OrderIDs()
	results := make([]CancelResult, 0, len(ids))
	for _, id := range ids {
		outcome, err := h.cancelOne(ctx, id)
		results = append(results, CancelResult{
			OrderID: id,
			Outcome: outcome,
			Err:     err,
		})
	}

	return results, nil
}

func (h *CancelOrdersCommandHandler) cancelOne(ctx context.Context, id kernel.UUID) (order.CancelOutcome, error) {
	if err := ctx.Err(); err != nil {
		return order.OutcomeUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.OutcomeUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return order.OutcomeUnknown, err
	}

	outcome, err := o.Cancel(h.clock())
	if err != nil {
		return order.OutcomeUnknown, err
	}

	if !outcome.Changed() {
		return outcome, nil
	}

	if err = repo.UpdateStatus(ctx, o); err != nil {
		return order.OutcomeUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.OutcomeUnknown, err
	}

	return outcome, nil
}
