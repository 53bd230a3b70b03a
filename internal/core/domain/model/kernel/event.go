package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a command. Events are
// collected by the unit of work and written to the outbox in the same transaction
// as the aggregate change, then relayed to the message broker.
type DomainEvent interface {
	// EventName is the routing key, e.g. "order.canceled".
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
