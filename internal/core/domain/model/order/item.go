package order

import (
	"errors"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a quantity of a product with the line total
// computed from the product price at the time the line was written.
type Item struct {
	id         kernel.UUID
	orderID    kernel.UUID
	productID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
	createdOn  time.Time
	guard      guard.ConstructorGuard
}

// NewItem creates a line for orderID and snapshots the product's current price.
func NewItem(id, orderID kernel.UUID, p *product.Product, quantity int, now time.Time) (*Item, error) {
	item := &Item{
		createdOn: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setReference(&item.id, id),
		setReference(&item.orderID, orderID),
	); err != nil {
		return nil, err
	}

	if err := item.Reprice(p, quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a line read from storage without recomputing its price.
func RestoreItem(
	id, orderID, productID kernel.UUID,
	quantity int,
	unitPrice, totalPrice kernel.Money,
	createdOn time.Time,
) (*Item, error) {
	item := &Item{
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		createdOn:  createdOn.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setReference(&item.id, id),
		setReference(&item.orderID, orderID),
		setReference(&item.productID, productID),
		validateQuantity(quantity),
		unitPrice.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice is the product price captured when the line was last written.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice is UnitPrice × Quantity rounded half-up to two digits.
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

func (i *Item) CreatedOn() time.Time {
	return i.createdOn
}

// Reprice sets product and quantity and recomputes the line total from the
// product's current price. On error the item is unchanged.
func (i *Item) Reprice(p *product.Product, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product", err)
	}

	total, err := p.LineTotal(quantity)
	if err != nil {
		return err
	}

	i.productID = p.ID()
	i.quantity = quantity
	i.unitPrice = p.Price()
	i.totalPrice = total
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
