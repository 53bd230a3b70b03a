package queries

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows ListOrders. Zero fields do not filter.
type OrderFilter struct {
	CustomerID *kernel.UUID
	Status     order.Status
}

type ListOrdersQuery struct {
	filter OrderFilter
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	var err error
	if filter.CustomerID != nil {
		err = errors.Join(err, filter.CustomerID.Validate())
	}
	if filter.Status != order.Unknown {
		err = errors.Join(err, filter.Status.Validate())
	}
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := psql.Select(orderColumns...).
		From("orders o").
		Join("customers c ON c.id = o.customer_id").
		OrderBy("o.created_on", "o.id")

	filter := query.Filter()
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"o.customer_id": filter.CustomerID.String()})
	}
	if filter.Status != order.Unknown {
		builder = builder.Where(sq.Eq{"o.order_status": filter.Status.String()})
	}

	rows, err := selectRows[orderRow](ctx, h.db, builder)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}

	return views, nil
}
