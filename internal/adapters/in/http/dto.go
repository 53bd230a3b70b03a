package http

import (
	"time"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by endpoints that create a resource.
type Created struct {
	ID kernel.UUID `json:"id"`
}

type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
}

type AddressRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Line1    string `json:"address_line_1"`
	Line2    string `json:"address_line_2"`
	Landmark string `json:"landmark"`
	Pincode  string `json:"pincode"`
}

type DisabledRequest struct {
	Disabled *bool `json:"disabled"`
}

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type ProductDetailsRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PriceRequest struct {
	Price string `json:"price"`
}

type OrderRequest struct {
	CustomerID string `json:"customer_id"`
	AddressID  string `json:"address_id"`
}

// ItemRequest adds a line when ItemID is empty or unknown, otherwise rewrites it.
type ItemRequest struct {
	ItemID    string `json:"item_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CancelRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type Customer struct {
	ID        kernel.UUID `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Mobile    string      `json:"mobile"`
	Email     string      `json:"email"`
	CreatedOn time.Time   `json:"created_on"`
	UpdatedOn time.Time   `json:"updated_on"`
}

type Address struct {
	ID         kernel.UUID `json:"id"`
	CustomerID kernel.UUID `json:"customer_id"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Line1      string      `json:"address_line_1"`
	Line2      string      `json:"address_line_2"`
	Landmark   string      `json:"landmark"`
	Pincode    string      `json:"pincode"`
	DisabledOn *time.Time  `json:"disabled_on"`
}

type Product struct {
	ID          kernel.UUID  `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       kernel.Money `json:"price"`
}

type Order struct {
	ID           kernel.UUID  `json:"id"`
	CustomerID   kernel.UUID  `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	AddressID    kernel.UUID  `json:"address_id"`
	TotalAmount  kernel.Money `json:"total_amount"`
	Status       string       `json:"order_status"`
	ItemCount    int          `json:"item_count"`
	CreatedOn    time.Time    `json:"created_on"`
}

type OrderItem struct {
	ID             kernel.UUID  `json:"id"`
	ProductID      kernel.UUID  `json:"product_id"`
	ProductName    string       `json:"product_name"`
	Quantity       int          `json:"quantity"`
	UnitPrice      kernel.Money `json:"unit_price"`
	TotalItemPrice kernel.Money `json:"total_item_price"`
	CreatedOn      time.Time    `json:"created_on"`
}

// Notice reports the outcome of a cancel request for one order.
type Notice struct {
	OrderID kernel.UUID `json:"order_id"`
	Outcome string      `json:"outcome"`
	Level   string      `json:"level"`
	Message string      `json:"message"`
}

type CancelResponse struct {
	Notices []Notice `json:"notices"`
}

func toCustomer(v queries.CustomerView) Customer {
	return Customer{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Mobile:    v.Mobile,
		Email:     v.Email,
		CreatedOn: v.CreatedOn,
		UpdatedOn: v.UpdatedOn,
	}
}

func toAddress(v queries.AddressView) Address {
	return Address{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Name:       v.Name,
		Phone:      v.Phone,
		Line1:      v.Line1,
		Line2:      v.Line2,
		Landmark:   v.Landmark,
		Pincode:    v.Pincode,
		DisabledOn: v.DisabledOn,
	}
}

func toProduct(v queries.ProductView) Product {
	return Product{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
	}
}

func toOrder(v queries.OrderView) Order {
	return Order{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CustomerName: v.CustomerName,
		AddressID:    v.AddressID,
		TotalAmount:  v.TotalAmount,
		Status:       v.Status.String(),
		ItemCount:    v.ItemCount,
		CreatedOn:    v.CreatedOn,
	}
}

func toOrderItem(v queries.OrderItemView) OrderItem {
	return OrderItem{
		ID:             v.ID,
		ProductID:      v.ProductID,
		ProductName:    v.ProductName,
		Quantity:       v.Quantity,
		UnitPrice:      v.UnitPrice,
		TotalItemPrice: v.TotalPrice,
		CreatedOn:      v.CreatedOn,
	}
}
