package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerProfile carries the customer fields supplied by the admin.
type CustomerProfile struct {
	FirstName string
	LastName  string
	Mobile    string
	Email     string
}

// CreateCustomerCommand registers a new customer.
// Field rules are enforced by the Customer aggregate; the command only checks the identifier.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	profile    CustomerProfile

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID kernel.UUID, profile CustomerProfile) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Profile() CustomerProfile {
	return c.profile
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
