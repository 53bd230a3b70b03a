package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Add and Update report duplicate mobile or email as errs.ValueIsNotUniqueError.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// AddressRepository defines the persistence contract for addresses.
type AddressRepository interface {
	Add(ctx context.Context, aggregate *customer.Address) error

	// UpdateDisabled writes disabled_on only.
	UpdateDisabled(ctx context.Context, aggregate *customer.Address) error

	// UpdateDetails writes the editable fields and leaves disabled_on untouched.
	UpdateDetails(ctx context.Context, aggregate *customer.Address) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}
