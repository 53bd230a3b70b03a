package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand renames a product and replaces its description.
// Prices change through ChangeProductPriceCommand only.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, name, description string) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Name() string {
	return c.name
}

func (c UpdateProductCommand) Description() string {
	return c.description
}
