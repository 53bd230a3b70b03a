package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrAddOrUpdateItemCommandIsNotConstructed = errors.New(
	"AddOrUpdateItemCommand must be created via NewAddOrUpdateItemCommand constructor",
)

// AddOrUpdateItemCommand writes one order line. When itemID names an existing
// item of the order, that item is rewritten; otherwise a new item with itemID is added.
type AddOrUpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddOrUpdateItemCommand(orderID, itemID, productID kernel.UUID, quantity int) (AddOrUpdateItemCommand, error) {
	var errQuantity error
	if quantity <= 0 {
		errQuantity = errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		productID.Validate(),
		errQuantity,
	); err != nil {
		return AddOrUpdateItemCommand{}, err
	}

	return AddOrUpdateItemCommand{
		orderID:   orderID,
		itemID:    itemID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrUpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrUpdateItemCommandIsNotConstructed)
}

func (c AddOrUpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrUpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddOrUpdateItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddOrUpdateItemCommand) Quantity() int {
	return c.quantity
}
