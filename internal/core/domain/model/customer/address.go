package customer

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// AddressDetails carries the editable fields of an address.
type AddressDetails struct {
	Name     string
	Phone    string
	Line1    string
	Line2    string
	Landmark string
	Pincode  string
}

// Address is a delivery address owned by exactly one customer.
//
// An address is active while disabledOn is nil. Disabling is a soft delete: the row
// stays referenced by past orders but is excluded from default listings and cannot
// be used for new orders.
type Address struct {
	id         kernel.UUID
	customerID kernel.UUID
	details    AddressDetails
	disabledOn *time.Time
	createdOn  time.Time
	guard      guard.ConstructorGuard
}

// NewAddress creates an active address for the given customer.
func NewAddress(id, customerID kernel.UUID, details AddressDetails, now time.Time) (*Address, error) {
	a := &Address{
		createdOn: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setDetails(details),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress rebuilds an address read from storage, including its disabled state.
func RestoreAddress(
	id, customerID kernel.UUID,
	details AddressDetails,
	disabledOn *time.Time,
	createdOn time.Time,
) (*Address, error) {
	a := &Address{
		createdOn: createdOn.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if disabledOn != nil {
		at := disabledOn.UTC()
		a.disabledOn = &at
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setDetails(details),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

// CustomerID is the owning customer.
func (a *Address) CustomerID() kernel.UUID {
	return a.customerID
}

func (a *Address) Details() AddressDetails {
	return a.details
}

func (a *Address) CreatedOn() time.Time {
	return a.createdOn
}

// DisabledOn returns the instant the address was disabled, or nil while active.
func (a *Address) DisabledOn() *time.Time {
	if a.disabledOn == nil {
		return nil
	}
	at := *a.disabledOn
	return &at
}

func (a *Address) IsActive() bool {
	return a.disabledOn == nil
}

// BelongsTo reports whether the address is owned by customerID.
func (a *Address) BelongsTo(customerID kernel.UUID) bool {
	return a.customerID.IsEqual(customerID)
}

// SetDisabled applies the soft-disable toggle.
//
//   - disabled and currently active: disabledOn becomes now
//   - disabled and already disabled: disabledOn is kept as is
//   - not disabled: disabledOn is cleared
//
// It reports whether the stored state changed.
func (a *Address) SetDisabled(disabled bool, now time.Time) bool {
	if !disabled {
		changed := a.disabledOn != nil
		a.disabledOn = nil
		return changed
	}

	if a.disabledOn != nil {
		return false
	}

	at := now.UTC()
	a.disabledOn = &at
	return true
}

// ChangeDetails replaces the editable fields. The address is left unchanged when
// any field is invalid.
func (a *Address) ChangeDetails(d AddressDetails) error {
	var staged Address
	if err := staged.setDetails(d); err != nil {
		return err
	}
	a.details = staged.details
	return nil
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	a.customerID = customerID
	return nil
}

func (a *Address) setDetails(d AddressDetails) error {
	var errName, errPhone, errLine1, errLine2, errLandmark, errPincode error

	a.details.Name, errName = requiredText("name", d.Name, MaxRecipientLength)
	a.details.Phone, errPhone = phoneNumber("phone", d.Phone)
	a.details.Line1, errLine1 = requiredText("address_line_1", d.Line1, MaxAddressLineLength)
	a.details.Line2, errLine2 = optionalText("address_line_2", d.Line2, MaxAddressLineLength)
	a.details.Landmark, errLandmark = optionalText("landmark", d.Landmark, MaxLandmarkLength)
	a.details.Pincode, errPincode = postalCode(d.Pincode)

	return errors.Join(errName, errPhone, errLine1, errLine2, errLandmark, errPincode)
}
