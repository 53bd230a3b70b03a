// Package product contains the Product aggregate of the catalog.
package product

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

const MaxNameLength = 100

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry with a current unit price.
//
// Changing the price never affects existing order items: each item keeps the
// line total computed from the price at the time it was written.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	guard       guard.ConstructorGuard
}

// NewProduct creates a catalog product. Description may be empty.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}
	p.description = strings.TrimSpace(description)

	return p, nil
}

// RestoreProduct rebuilds a product read from storage.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, description, price)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

// Price is the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangePrice sets a new unit price for future order items.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// Rename replaces the name and description. The price is not affected.
func (p *Product) Rename(name, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = strings.TrimSpace(description)
	return nil
}

// LineTotal is the price of quantity units at the current price.
func (p *Product) LineTotal(quantity int) (kernel.Money, error) {
	return p.price.Multiply(quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	p.price = price
	return nil
}
