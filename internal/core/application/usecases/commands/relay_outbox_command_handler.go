package commands

import (
	"context"

	"ecommerce/internal/core/ports"
)

// RelayReport counts what one relay run did.
type RelayReport struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler publishes pending outbox messages and records the
// result of each attempt. The batch stays locked until the run commits, so
// concurrent relays never send the same message twice.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns an error only for storage failures. A publish failure is
// recorded on the message and counted in the report.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayReport, error) {
	if err := cmd.Validate(); err != nil {
		return RelayReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayReport{}, err
	}
	if len(pending) == 0 {
		return RelayReport{}, nil
	}

	var report RelayReport
	for _, msg := range pending {
		if pubErr := h.publisher.Publish(ctx, msg); pubErr != nil {
			if err = repo.MarkFailed(ctx, msg.ID, pubErr); err != nil {
				return RelayReport{}, err
			}
			report.Failed++
			continue
		}

		if err = repo.MarkPublished(ctx, msg.ID, h.clock()); err != nil {
			return RelayReport{}, err
		}
		report.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayReport{}, err
	}

	return report, nil
}
