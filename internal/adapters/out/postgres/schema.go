package postgres

import (
	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service reads or writes.
// Catalog tables come first because orders reference restaurants.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
