// Package queries contains read-only use cases.
// Handlers read straight from the database into flat views; they never load aggregates.
package queries

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// CustomerView is the admin read model of a customer.
type CustomerView struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Mobile    string
	Email     string
	CreatedOn time.Time
	UpdatedOn time.Time
}

// AddressView is the admin read model of an address. DisabledOn is nil while active.
type AddressView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Name       string
	Phone      string
	Line1      string
	Line2      string
	Landmark   string
	Pincode    string
	DisabledOn *time.Time
	CreatedOn  time.Time
}

type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
}

// OrderView is an order row as shown in the admin list and detail pages.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	AddressID    kernel.UUID
	TotalAmount  kernel.Money
	Status       order.Status
	ItemCount    int
	CreatedOn    time.Time
}

// OrderItemView is one line of an order with its price snapshot.
type OrderItemView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	TotalPrice  kernel.Money
	CreatedOn   time.Time
}
