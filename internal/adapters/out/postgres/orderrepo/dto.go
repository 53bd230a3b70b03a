// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders and their line items live in separate tables; items reference their order
// and product and carry the price snapshot taken when they were last written.
package orderrepo

import (
	"time"

	"ecommerce/internal/adapters/out/postgres/customerrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table. Status is stored by name. The association
// fields only declare foreign keys; they are never loaded or written.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddressID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	OrderStatus string          `gorm:"type:varchar(10);not null;default:active;index"`
	CreatedOn   time.Time       `gorm:"not null;index"`

	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Address  *customerrepo.AddressDTO  `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the order_items table.
type ItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       int             `gorm:"not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalItemPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedOn      time.Time       `gorm:"not null"`

	Order   *OrderDTO               `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		CustomerID:  o.CustomerID().Bytes(),
		AddressID:   o.AddressID().Bytes(),
		TotalAmount: o.Total().Decimal(),
		OrderStatus: o.Status().String(),
		CreatedOn:   o.CreatedOn(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, addressID, total, status, dto.CreatedOn)
}

func itemFromDomain(i *order.Item) ItemDTO {
	return ItemDTO{
		ID:             i.ID().Bytes(),
		OrderID:        i.OrderID().Bytes(),
		ProductID:      i.ProductID().Bytes(),
		Quantity:       i.Quantity(),
		UnitPrice:      i.UnitPrice().Decimal(),
		TotalItemPrice: i.TotalPrice().Decimal(),
		CreatedOn:      i.CreatedOn(),
	}
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalItemPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, dto.Quantity, unitPrice, totalPrice, dto.CreatedOn)
}
