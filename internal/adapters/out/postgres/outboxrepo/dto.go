// Package outboxrepo stores domain events in the outbox table until the relay
// job hands them to the broker.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one outbox row. PublishedAt stays NULL until the relay succeeds.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
	Attempts    int        `gorm:"not null;default:0"`
	LastError   string     `gorm:"type:text;not null;default:''"`
}

func (MessageDTO) TableName() string {
	return "outbox"
}

// FromEvent serializes a domain event into a new outbox row.
func FromEvent(event kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	return MessageDTO{
		ID:          kernel.NewUUID().Bytes(),
		EventName:   event.EventName(),
		AggregateID: event.AggregateID().Bytes(),
		Payload:     string(payload),
		OccurredAt:  event.OccurredAt().UTC(),
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventName:   dto.EventName,
		AggregateID: aggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt.UTC(),
		Attempts:    dto.Attempts,
	}, nil
}
