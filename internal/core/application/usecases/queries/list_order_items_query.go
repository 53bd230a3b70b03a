package queries

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrListOrderItemsQueryIsNotConstructed = errors.New(
	"ListOrderItemsQuery must be created via NewListOrderItemsQuery constructor",
)

type ListOrderItemsQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListOrderItemsQuery(orderID kernel.UUID) (ListOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListOrderItemsQuery{}, err
	}
	return ListOrderItemsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderItemsQueryIsNotConstructed)
}

type ListOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderItemsQueryHandler(db *gorm.DB) ListOrderItemsQueryHandler {
	return ListOrderItemsQueryHandler{db: db}
}

// Handle lists the order's items oldest first. Prices are the stored snapshots,
// not the product's current price.
func (h ListOrderItemsQueryHandler) Handle(ctx context.Context, query ListOrderItemsQuery) ([]OrderItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := psql.Select(
		"i.id", "i.order_id", "i.product_id", "p.name AS product_name",
		"i.quantity", "i.unit_price", "i.total_item_price", "i.created_on",
	).
		From("order_items i").
		Join("products p ON p.id = i.product_id").
		Where(sq.Eq{"i.order_id": query.orderID.String()}).
		OrderBy("i.created_on", "i.id")

	rows, err := selectRows[orderItemRow](ctx, h.db, builder)
	if err != nil {
		return nil, err
	}

	views := make([]OrderItemView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}

	return views, nil
}
