package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func validProfile() commands.CustomerProfile {
	return commands.CustomerProfile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Mobile:    "9876543210",
		Email:     "ada@example.com",
	}
}

func validAddressDetails() customer.AddressDetails {
	return customer.AddressDetails{
		Name:    "Ada Lovelace",
		Phone:   "9876543210",
		Line1:   "12 St James's Square",
		Pincode: "110001",
	}
}

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "9876543210", "ada@example.com", fixedNow)
	require.NoError(t, err)
	return c
}

func newAddress(t *testing.T, customerID kernel.UUID) *customer.Address {
	t.Helper()

	a, err := customer.NewAddress(kernel.NewUUID(), customerID, validAddressDetails(), fixedNow)
	require.NoError(t, err)
	return a
}

func newProduct(t *testing.T, price string) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "", kernel.MustNewMoney(price))
	require.NoError(t, err)
	return p
}

func restoreOrder(t *testing.T, status order.Status, total string) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustNewMoney(total), status, fixedNow)
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, o *order.Order, p *product.Product, quantity int) *order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), o.ID(), p, quantity, fixedNow)
	require.NoError(t, err)
	return item
}
