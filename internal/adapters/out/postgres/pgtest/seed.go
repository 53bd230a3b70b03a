package pgtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ecommerce/internal/adapters/out/postgres/customerrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

var seq atomic.Int64

// Owner is a stored customer together with one of its active addresses.
type Owner struct {
	CustomerID kernel.UUID
	AddressID  kernel.UUID
}

// SeedOwner stores a customer with a single address so that orders can reference them.
func (d *Database) SeedOwner(ctx context.Context) (Owner, error) {
	n := seq.Add(1)
	now := time.Now().UTC()

	c, err := customer.NewCustomer(
		kernel.NewUUID(), "Test", "Owner",
		fmt.Sprintf("9%09d", n), fmt.Sprintf("owner%d@example.com", n), now,
	)
	if err != nil {
		return Owner{}, err
	}
	if err = customerrepo.NewGormCustomerRepository(d.DB).Add(ctx, c); err != nil {
		return Owner{}, err
	}

	details := customer.AddressDetails{Name: "Test Owner", Phone: "9876543210", Line1: "1 Test Street", Pincode: "560001"}
	a, err := customer.NewAddress(kernel.NewUUID(), c.ID(), details, now)
	if err != nil {
		return Owner{}, err
	}
	if err = customerrepo.NewGormAddressRepository(d.DB).Add(ctx, a); err != nil {
		return Owner{}, err
	}

	return Owner{CustomerID: c.ID(), AddressID: a.ID()}, nil
}

// SeedProduct stores a product with the given price.
func (d *Database) SeedProduct(ctx context.Context, price string) (*product.Product, error) {
	p, err := product.NewProduct(kernel.NewUUID(), fmt.Sprintf("Product %d", seq.Add(1)), "", kernel.MustNewMoney(price))
	if err != nil {
		return nil, err
	}
	if err = productrepo.NewGormProductRepository(d.DB).Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
