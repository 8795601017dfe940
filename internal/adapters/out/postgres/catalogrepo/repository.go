package catalogrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

func (r *GormCatalogRepository) GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id)
		}
		return nil, err
	}

	return dishToDomain(dto)
}
