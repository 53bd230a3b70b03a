// Package ports defines the contracts between the application core and its adapters:
// repositories for every aggregate, the unit of work, and the outbound event publisher.
package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier without locking.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row lock on it until the
	// surrounding transaction ends. Item writes and total recomputes for the
	// same order are serialized through this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes order_status only.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdateTotal writes total_amount only, so a concurrent status change is never overwritten.
	UpdateTotal(ctx context.Context, aggregate *order.Order) error
}

// OrderItemRepository defines the persistence contract for order line items.
type OrderItemRepository interface {
	Add(ctx context.Context, item *order.Item) error

	// Update writes product, quantity and price snapshot of an existing item.
	Update(ctx context.Context, item *order.Item) error

	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// Remove deletes an item. A missing item is reported as not found.
	Remove(ctx context.Context, id kernel.UUID) error

	// ListByOrder returns all items of an order ordered by creation time.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)
}
