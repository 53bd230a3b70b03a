package customer

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a shop customer.
//
// Invariants:
//   - first and last name are required, at most 50 characters each
//   - mobile is exactly 10 digits; email is a bare, valid address
//   - mobile and email are unique across customers (enforced by storage)
//   - updatedOn is refreshed on every change and never precedes createdOn
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	mobile    string
	email     string
	createdOn time.Time
	updatedOn time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer registers a new customer at the given instant.
func NewCustomer(id kernel.UUID, firstName, lastName, mobile, email string, now time.Time) (*Customer, error) {
	c := &Customer{
		createdOn: now.UTC(),
		updatedOn: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setProfile(firstName, lastName, mobile, email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer read from storage.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName, mobile, email string,
	createdOn, updatedOn time.Time,
) (*Customer, error) {
	c := &Customer{
		createdOn: createdOn.UTC(),
		updatedOn: updatedOn.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setProfile(firstName, lastName, mobile, email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

func (c *Customer) Mobile() string {
	return c.mobile
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) CreatedOn() time.Time {
	return c.createdOn
}

// UpdatedOn is the instant of the last profile change.
func (c *Customer) UpdatedOn() time.Time {
	return c.updatedOn
}

// FullName is "First Last", used in order listings.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// UpdateProfile replaces the contact details and stamps updatedOn.
// On validation failure the customer is left unchanged.
func (c *Customer) UpdateProfile(firstName, lastName, mobile, email string, now time.Time) error {
	next := *c
	if err := next.setProfile(firstName, lastName, mobile, email); err != nil {
		return err
	}

	*c = next
	c.touch(now)
	return nil
}

func (c *Customer) touch(now time.Time) {
	now = now.UTC()
	if now.Before(c.createdOn) {
		now = c.createdOn
	}
	c.updatedOn = now
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setProfile(firstName, lastName, mobile, email string) error {
	var errFirst, errLast, errMobile, errEmail error

	c.firstName, errFirst = requiredText("first_name", firstName, MaxPersonNameLength)
	c.lastName, errLast = requiredText("last_name", lastName, MaxPersonNameLength)
	c.mobile, errMobile = phoneNumber("mobile", mobile)
	c.email, errEmail = emailAddress(email)

	return errors.Join(errFirst, errLast, errMobile, errEmail)
}
