package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces a customer's contact details.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	profile    CustomerProfile

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.UUID, profile CustomerProfile) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	cmd.customerID = customerID

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Profile() CustomerProfile {
	return c.profile
}
