package queries

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// psql builds SQL with "?" placeholders, which gorm rebinds for the active dialect.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type customerRow struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Mobile    string
	Email     string
	CreatedOn time.Time
	UpdatedOn time.Time
}

func (r customerRow) view() (CustomerView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return CustomerView{}, err
	}

	return CustomerView{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Mobile:    r.Mobile,
		Email:     r.Email,
		CreatedOn: r.CreatedOn.UTC(),
		UpdatedOn: r.UpdatedOn.UTC(),
	}, nil
}

type addressRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	Name         string
	Phone        string
	AddressLine1 string `gorm:"column:address_line_1"`
	AddressLine2 string `gorm:"column:address_line_2"`
	Landmark     string
	Pincode      string
	DisabledOn   *time.Time
	CreatedOn    time.Time
}

func (r addressRow) view() (AddressView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return AddressView{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return AddressView{}, err
	}

	var disabledOn *time.Time
	if r.DisabledOn != nil {
		at := r.DisabledOn.UTC()
		disabledOn = &at
	}

	return AddressView{
		ID:         id,
		CustomerID: customerID,
		Name:       r.Name,
		Phone:      r.Phone,
		Line1:      r.AddressLine1,
		Line2:      r.AddressLine2,
		Landmark:   r.Landmark,
		Pincode:    r.Pincode,
		DisabledOn: disabledOn,
		CreatedOn:  r.CreatedOn.UTC(),
	}, nil
}

type productRow struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
}

func (r productRow) view() (ProductView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ProductView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return ProductView{}, err
	}

	return ProductView{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
	}, nil
}

// orderColumns selects what orderRow scans, joined with the customer for its name.
var orderColumns = []string{
	"o.id",
	"o.customer_id",
	"c.first_name || ' ' || c.last_name AS customer_name",
	"o.address_id",
	"o.total_amount",
	"o.order_status",
	"(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count",
	"o.created_on",
}

type orderRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	AddressID    uuid.UUID
	TotalAmount  decimal.Decimal
	OrderStatus  string
	ItemCount    int
	CreatedOn    time.Time
}

func (r orderRow) view() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return OrderView{}, err
	}
	addressID, err := kernel.UUIDFromBytes(r.AddressID[:])
	if err != nil {
		return OrderView{}, err
	}
	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(r.OrderStatus)
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		AddressID:    addressID,
		TotalAmount:  total,
		Status:       status,
		ItemCount:    r.ItemCount,
		CreatedOn:    r.CreatedOn.UTC(),
	}, nil
}

type orderItemRow struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int
	UnitPrice      decimal.Decimal
	TotalItemPrice decimal.Decimal
	CreatedOn      time.Time
}

func (r orderItemRow) view() (OrderItemView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	unitPrice, err := kernel.NewMoney(r.UnitPrice)
	if err != nil {
		return OrderItemView{}, err
	}
	totalPrice, err := kernel.NewMoney(r.TotalItemPrice)
	if err != nil {
		return OrderItemView{}, err
	}

	return OrderItemView{
		ID:          id,
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
		CreatedOn:   r.CreatedOn.UTC(),
	}, nil
}

// selectRows runs a squirrel select through gorm and scans every row into R.
func selectRows[R any](ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]R, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows := make([]R, 0)
	if err = db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errs.WrapPersistence("select", err)
	}

	return rows, nil
}

// selectOne is selectRows for lookups by primary key; an empty result is ObjectNotFoundError.
func selectOne[R any](
	ctx context.Context,
	db *gorm.DB,
	builder sq.SelectBuilder,
	paramName string,
	id kernel.UUID,
) (R, error) {
	var zero R

	rows, err := selectRows[R](ctx, db, builder.Limit(1))
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, errs.NewObjectNotFoundError(paramName, id.String())
	}

	return rows[0], nil
}
