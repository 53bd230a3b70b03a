package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand sets a new unit price. Existing order items keep their snapshot.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	var errPrice error
	if err := price.Validate(); err != nil {
		errPrice = errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	if err := errors.Join(productID.Validate(), errPrice); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return ChangeProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}
