package order

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created via NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer order.
//
// Order follows these invariants:
//   - customer and address are fixed at creation
//   - total is derived from the items and only changes through ApplyTotal
//   - status transitions follow Status; cancel requests never fail on a valid status
//
// State changes record domain events that the unit of work persists to the outbox.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	addressID  kernel.UUID
	total      kernel.Money
	status     Status
	createdOn  time.Time
	events     []kernel.DomainEvent
	guard      guard.ConstructorGuard
}

// NewOrder creates an active order with a zero total.
//
// The caller is responsible for checking that the address belongs to the customer
// and is active; those facts live in other aggregates.
func NewOrder(id, customerID, addressID kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		total:     kernel.ZeroMoney(),
		status:    Active,
		createdOn: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		setReference(&o.customerID, customerID),
		setReference(&o.addressID, addressID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage.
func RestoreOrder(
	id, customerID, addressID kernel.UUID,
	total kernel.Money,
	status Status,
	createdOn time.Time,
) (*Order, error) {
	o := &Order{
		createdOn: createdOn.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		setReference(&o.customerID, customerID),
		setReference(&o.addressID, addressID),
		o.setTotal(total),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Total is the last persisted sum of item line totals.
func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedOn() time.Time {
	return o.createdOn
}

// Cancel applies a cancel request.
//
//   - active: becomes canceled, OutcomeCanceled
//   - completed: unchanged, OutcomeRejectedAlreadyCompleted
//   - canceled: unchanged, OutcomeAlreadyCanceled
//
// An error is returned only for a corrupted status. Repeating the call is safe.
func (o *Order) Cancel(now time.Time) (CancelOutcome, error) {
	next, outcome, err := o.status.Cancel()
	if err != nil {
		return OutcomeUnknown, err
	}

	if outcome.Changed() {
		o.status = next
		o.record(CanceledEvent{
			OrderID:    o.id,
			CustomerID: o.customerID,
			Total:      o.total,
			At:         now.UTC(),
		})
	}

	return outcome, nil
}

// Complete marks an active order as fulfilled.
func (o *Order) Complete(now time.Time) error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	o.record(CompletedEvent{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Total:      o.total,
		At:         now.UTC(),
	})
	return nil
}

// ApplyTotal stores a freshly computed total and reports whether it differs
// from the previous one.
func (o *Order) ApplyTotal(total kernel.Money, now time.Time) (bool, error) {
	if err := total.Validate(); err != nil {
		return false, err
	}
	if o.total.IsEqual(total) {
		return false, nil
	}

	previous := o.total
	o.total = total
	o.record(TotalChangedEvent{
		OrderID:  o.id,
		Previous: previous,
		Current:  total,
		At:       now.UTC(),
	})
	return true, nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func setReference(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
