package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// UpdatePrice writes the unit price only.
	UpdatePrice(ctx context.Context, aggregate *product.Product) error

	// UpdateDetails writes name and description only.
	UpdateDetails(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
