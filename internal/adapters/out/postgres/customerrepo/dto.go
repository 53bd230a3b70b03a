// Package customerrepo persists customers and their addresses with GORM.
// Unique mobile and email are enforced by named unique indexes so that a
// violation can be reported against the offending field.
package customerrepo

import (
	"time"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	mobileConstraint = "customers_mobile_key"
	emailConstraint  = "customers_email_key"
)

// CustomerDTO is the customers table row.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(50);not null"`
	LastName  string    `gorm:"type:varchar(50);not null"`
	Mobile    string    `gorm:"type:varchar(10);not null;uniqueIndex:customers_mobile_key"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex:customers_email_key"`
	CreatedOn time.Time `gorm:"not null"`
	UpdatedOn time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the addresses table row. DisabledOn is NULL while the address is active.
type AddressDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Phone        string     `gorm:"type:varchar(10);not null"`
	AddressLine1 string     `gorm:"column:address_line_1;type:varchar(255);not null"`
	AddressLine2 string     `gorm:"column:address_line_2;type:varchar(255);not null;default:''"`
	Landmark     string     `gorm:"type:varchar(100);not null;default:''"`
	Pincode      string     `gorm:"type:varchar(6);not null"`
	DisabledOn   *time.Time `gorm:"index"`
	CreatedOn    time.Time  `gorm:"not null"`

	Customer *CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Mobile:    c.Mobile(),
		Email:     c.Email(),
		CreatedOn: c.CreatedOn(),
		UpdatedOn: c.UpdatedOn(),
	}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Mobile,
		dto.Email,
		dto.CreatedOn,
		dto.UpdatedOn,
	)
}

func addressFromDomain(a *customer.Address) AddressDTO {
	details := a.Details()

	return AddressDTO{
		ID:           a.ID().Bytes(),
		CustomerID:   a.CustomerID().Bytes(),
		Name:         details.Name,
		Phone:        details.Phone,
		AddressLine1: details.Line1,
		AddressLine2: details.Line2,
		Landmark:     details.Landmark,
		Pincode:      details.Pincode,
		DisabledOn:   a.DisabledOn(),
		CreatedOn:    a.CreatedOn(),
	}
}

func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	details := customer.AddressDetails{
		Name:     dto.Name,
		Phone:    dto.Phone,
		Line1:    dto.AddressLine1,
		Line2:    dto.AddressLine2,
		Landmark: dto.Landmark,
		Pincode:  dto.Pincode,
	}

	return customer.RestoreAddress(id, customerID, details, dto.DisabledOn, dto.CreatedOn)
}
