package customerrepo

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Add(ctx context.Context, aggregate *customer.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.WrapPersistence("add address", err)
	}

	return nil
}

// UpdateDisabled writes disabled_on only; a nil value clears the column.
func (r *GormAddressRepository) UpdateDisabled(ctx context.Context, aggregate *customer.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("disabled_on", aggregate.DisabledOn())
	if result.Error != nil {
		return errs.WrapPersistence("update address", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	return nil
}

// UpdateDetails rewrites the editable columns. disabled_on and customer_id never change here.
func (r *GormAddressRepository) UpdateDetails(ctx context.Context, aggregate *customer.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "address_line_1", "address_line_2", "landmark", "pincode").
		Updates(&dto)
	if result.Error != nil {
		return errs.WrapPersistence("update address", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	return nil
}

func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, errs.WrapPersistence("get address", err)
	}

	return addressToDomain(dto)
}
