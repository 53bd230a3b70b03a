package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrSetAddressDisabledCommandIsNotConstructed = errors.New(
	"SetAddressDisabledCommand must be created via NewSetAddressDisabledCommand constructor",
)

// SetAddressDisabledCommand toggles the soft-disable flag of an address.
type SetAddressDisabledCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	disabled  bool

	guard guard.ConstructorGuard
}

func NewSetAddressDisabledCommand(addressID kernel.UUID, disabled bool) (SetAddressDisabledCommand, error) {
	if err := addressID.Validate(); err != nil {
		return SetAddressDisabledCommand{}, err
	}

	return SetAddressDisabledCommand{
		addressID: addressID,
		disabled:  disabled,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetAddressDisabledCommand) Validate() error {
	return c.guard.Validate(ErrSetAddressDisabledCommandIsNotConstructed)
}

func (c SetAddressDisabledCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c SetAddressDisabledCommand) Disabled() bool {
	return c.disabled
}
