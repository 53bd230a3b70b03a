package services

import (
	"errors"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
)

// ErrItemOfAnotherOrder is returned when an item passed to the calculator
// belongs to a different order.
var ErrItemOfAnotherOrder = errors.New("item belongs to another order")

// OrderTotalCalculator sums item line totals into an order total.
//
// Business rules:
//   - an order without items totals 0.00
//   - the total is the exact decimal sum of TotalPrice, no re-rounding of lines
//   - the result must fit numeric(10,2), otherwise the write is rejected
type OrderTotalCalculator struct{}

func NewOrderTotalCalculator() OrderTotalCalculator {
	return OrderTotalCalculator{}
}

// Calculate returns the sum of the items' line totals.
func (OrderTotalCalculator) Calculate(o *order.Order, items []*order.Item) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, err
		}
		if !item.OrderID().IsEqual(o.ID()) {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
				"item", fmt.Errorf("%w: item %s, order %s", ErrItemOfAnotherOrder, item.ID(), o.ID()))
		}

		var err error
		if total, err = total.Add(item.TotalPrice()); err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// Recalculate computes the total and applies it to the order.
// It reports whether the stored total needs to be written.
func (c OrderTotalCalculator) Recalculate(o *order.Order, items []*order.Item, now time.Time) (bool, error) {
	total, err := c.Calculate(o, items)
	if err != nil {
		return false, err
	}
	return o.ApplyTotal(total, now)
}
