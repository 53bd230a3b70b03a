package queries

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetAddressQueryIsNotConstructed = errors.New(
	"GetAddressQuery must be created via NewGetAddressQuery constructor",
)

var addressColumns = []string{
	"id", "customer_id", "name", "phone", "address_line_1", "address_line_2",
	"landmark", "pincode", "disabled_on", "created_on",
}

// GetAddressQuery fetches one address, active or disabled.
type GetAddressQuery struct {
	addressID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetAddressQuery(addressID kernel.UUID) (GetAddressQuery, error) {
	if err := addressID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	return GetAddressQuery{addressID: addressID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

func (q GetAddressQuery) AddressID() kernel.UUID {
	return q.addressID
}

type GetAddressQueryHandler struct {
	db *gorm.DB
}

func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

func (h GetAddressQueryHandler) Handle(ctx context.Context, query GetAddressQuery) (AddressView, error) {
	if err := query.Validate(); err != nil {
		return AddressView{}, err
	}

	builder := psql.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": query.AddressID().String()})

	row, err := selectOne[addressRow](ctx, h.db, builder, "address", query.AddressID())
	if err != nil {
		return AddressView{}, err
	}

	return row.view()
}
