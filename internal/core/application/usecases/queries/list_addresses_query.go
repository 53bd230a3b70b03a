package queries

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// ListAddressesQuery lists a customer's addresses. Disabled addresses are
// excluded unless includeDisabled is set, matching the admin inline view.
type ListAddressesQuery struct {
	customerID      kernel.UUID
	includeDisabled bool
	guard           guard.ConstructorGuard
}

func NewListAddressesQuery(customerID kernel.UUID, includeDisabled bool) (ListAddressesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListAddressesQuery{}, err
	}

	return ListAddressesQuery{
		customerID:      customerID,
		includeDisabled: includeDisabled,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

type ListAddressesQueryHandler struct {
	db *gorm.DB
}

func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle returns the addresses ordered by creation time. An unknown customer yields an empty list.
func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := psql.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"customer_id": query.customerID.String()}).
		OrderBy("created_on", "id")
	if !query.includeDisabled {
		builder = builder.Where(sq.Eq{"disabled_on": nil})
	}

	rows, err := selectRows[addressRow](ctx, h.db, builder)
	if err != nil {
		return nil, err
	}

	views := make([]AddressView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.view()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}

	return views, nil
}
