package kernel

import (
	"errors"
	"fmt"

	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of fractional digits kept for every amount.
	MoneyScale = 2

	// MoneyMaxDigits bounds the total number of digits, matching numeric(10,2) columns.
	MoneyMaxDigits = 10
)

var (
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

	moneyUpperBound = decimal.New(1, MoneyMaxDigits-MoneyScale)
)

// Money is a non-negative fixed-point amount rounded half-up to two fractional digits.
// Arithmetic always re-rounds, so a product of a unit price and a quantity is exact
// to the cent and two equal amounts compare equal regardless of how they were built.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// NewMoney rounds amount to two digits and checks it fits the storage precision.
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(MoneyScale)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", rounded.StringFixed(MoneyScale)))
	}
	if rounded.GreaterThanOrEqual(moneyUpperBound) {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"money", rounded.StringFixed(MoneyScale), "0.00", moneyUpperBound.Sub(decimal.New(1, -MoneyScale)).StringFixed(MoneyScale))
	}
	return Money{amount: rounded, isConstructed: true}, nil
}

// MustNewMoney is NewMoney for literals in tests and fixtures.
func MustNewMoney(amount string) Money {
	m, err := MoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromString parses a decimal string such as "9.99". Input amounts are not
// rounded: more than two fractional digits is invalid.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	if d.Exponent() < -MoneyScale {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%q has more than %d fractional digits", s, MoneyScale))
	}
	return NewMoney(d)
}

// Validate rejects zero-value Money.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Decimal exposes the rounded amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalText renders the two-digit string form, e.g. "34.97".
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns m + other. It fails only when the sum exceeds the storage precision.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount.Add(other.amount))
}

// Multiply returns m × quantity rounded to two digits.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}
