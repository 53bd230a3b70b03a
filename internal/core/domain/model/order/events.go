package order

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
)

const (
	EventCanceled     = "order.canceled"
	EventCompleted    = "order.completed"
	EventTotalChanged = "order.total_changed"
)

// CanceledEvent is recorded when an active order is canceled.
type CanceledEvent struct {
	OrderID    kernel.UUID  `json:"order_id"`
	CustomerID kernel.UUID  `json:"customer_id"`
	Total      kernel.Money `json:"total_amount"`
	At         time.Time    `json:"occurred_at"`
}

func (e CanceledEvent) EventName() string { return EventCanceled }
func (e CanceledEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CanceledEvent) OccurredAt() time.Time { return e.At }

// CompletedEvent is recorded when the fulfillment process completes an order.
type CompletedEvent struct {
	OrderID    kernel.UUID  `json:"order_id"`
	CustomerID kernel.UUID  `json:"customer_id"`
	Total      kernel.Money `json:"total_amount"`
	At         time.Time    `json:"occurred_at"`
}

func (e CompletedEvent) EventName() string { return EventCompleted }
func (e CompletedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CompletedEvent) OccurredAt() time.Time { return e.At }

// TotalChangedEvent is recorded when a recompute produces a different total.
type TotalChangedEvent struct {
	OrderID  kernel.UUID  `json:"order_id"`
	Previous kernel.Money `json:"previous_total"`
	Current  kernel.Money `json:"current_total"`
	At       time.Time    `json:"occurred_at"`
}

func (e TotalChangedEvent) EventName() string { return EventTotalChanged }
func (e TotalChangedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e TotalChangedEvent) OccurredAt() time.Time { return e.At }
