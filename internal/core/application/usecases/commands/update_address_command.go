package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand replaces the editable fields of an address.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	details   customer.AddressDetails

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(addressID kernel.UUID, details customer.AddressDetails) (UpdateAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return UpdateAddressCommand{}, err
	}

	return UpdateAddressCommand{
		addressID: addressID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c UpdateAddressCommand) Details() customer.AddressDetails {
	return c.details
}
