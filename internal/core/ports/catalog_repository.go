package ports

import (
	"context"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
)

// CatalogRepository reads the restaurant catalog. The core never writes to it.
type CatalogRepository interface {
	// GetRestaurant returns errs.ObjectNotFoundError when no restaurant has the id.
	GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error)

	// GetDish returns the dish with its options, or errs.ObjectNotFoundError.
	GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error)
}
