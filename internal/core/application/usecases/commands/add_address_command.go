package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand adds an active delivery address to a customer.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	addressID  kernel.UUID
	customerID kernel.UUID
	details    customer.AddressDetails

	guard guard.ConstructorGuard
}

func NewAddAddressCommand(
	addressID, customerID kernel.UUID,
	details customer.AddressDetails,
) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

func (c AddAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c AddAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddAddressCommand) Details() customer.AddressDetails {
	return c.details
}

func (c *AddAddressCommand) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.addressID = id
	return nil
}

func (c *AddAddressCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}
