package ports

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event serialized for relay to the broker.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
	Attempts    int
}

// OutboxRepository reads and updates pending outbox messages for the relay.
// Messages are written by the unit of work on commit.
type OutboxRepository interface {
	// GetPending returns up to limit unpublished messages in occurrence order,
	// locking them so concurrent relays skip them.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error

	// MarkFailed increments the attempt counter and stores the last error.
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}

// EventPublisher delivers a serialized event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
