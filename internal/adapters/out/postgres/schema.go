package postgres

import (
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/menurepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/sequence"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service reads or writes.
// Restaurants and menu items are included so a fresh database is usable,
// even though their rows are maintained elsewhere.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.RestaurantDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&sequence.CounterDTO{},
	)
}
