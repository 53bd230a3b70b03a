package postgres

import (
	"ecommerce/internal/adapters/out/postgres/customerrepo"
	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/adapters/out/postgres/outboxrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Tables lists every table in truncation-safe order.
var Tables = []string{"outbox", "order_items", "orders", "products", "addresses", "customers"}

// Migrate creates or alters the schema for all persisted types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&outboxrepo.MessageDTO{},
	)
}
