// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CustomerUoW is used by commands that only change customers.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// AddressUoW is used by commands that read the owning customer and change addresses.
	AddressUoW interface {
		TxManager
		CustomerRepoFactory
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// ProductUoW is used by catalog commands.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW is used when an order is created for a customer and address.
	OrderUoW interface {
		TxManager
		CustomerRepoFactory
		AddressRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderItemUoW is used by line-item writes and total recomputes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... write item, list items, recompute
	//   err = uow.OrderRepository().UpdateTotal(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderItemUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		OrderItemRepoFactory
	}

	OrderItemUoWFactory interface {
		Create() OrderItemUoW
	}

	// OrderLifecycleUoW is used by status transitions.
	OrderLifecycleUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}

	// OutboxUoW is used by the relay that forwards stored events to the broker.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// Clock supplies the current instant to handlers that stamp timestamps.
type Clock func() time.Time

// SystemClock returns time.Now in UTC.
func SystemClock() Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}
