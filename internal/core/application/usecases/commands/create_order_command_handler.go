package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
)

var (
	ErrAddressOfAnotherCustomer = errors.New("address belongs to another customer")
	ErrAddressIsDisabled        = errors.New("address is disabled")
)

// CreateOrderCommandHandler creates an order in "active" status with a zero total.
// The customer must exist and the address must be an active address of that customer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	address, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if !address.BelongsTo(cmd.CustomerID()) {
		return errs.NewValueIsInvalidErrorWithCause("address_id", ErrAddressOfAnotherCustomer)
	}
	if !address.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("address_id", ErrAddressIsDisabled)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.AddressID(), h.clock())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
