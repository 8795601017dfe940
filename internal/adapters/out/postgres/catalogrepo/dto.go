// Package catalogrepo reads restaurants and dishes. Catalog tables are owned by
// the catalog service; this package only maps them into domain entities.
package catalogrepo

import (
	"errors"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
)

// RestaurantDTO maps the restaurants table.
type RestaurantDTO struct {
	ID      int64 `gorm:"primaryKey"`
	OwnerID int64 `gorm:"index;not null"`
	Name    string
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO maps the dishes table. Options are stored as a JSON document in the
// order the catalog defines them.
type DishDTO struct {
	ID           int64 `gorm:"primaryKey"`
	RestaurantID int64 `gorm:"index;not null"`
	Name         string
	Price        int64           `gorm:"not null"`
	Options      []DishOptionDTO `gorm:"type:jsonb;serializer:json"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

type DishOptionDTO struct {
	Name    string          `json:"name"`
	Extra   *int64          `json:"extra,omitempty"`
	Choices []DishChoiceDTO `json:"choices,omitempty"`
}

type DishChoiceDTO struct {
	Name  string `json:"name"`
	Extra *int64 `json:"extra,omitempty"`
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	return catalog.NewRestaurant(kernel.ID(dto.ID), kernel.ID(dto.OwnerID), dto.Name)
}

func dishToDomain(dto DishDTO) (*catalog.Dish, error) {
	options := make([]catalog.DishOption, 0, len(dto.Options))
	for _, o := range dto.Options {
		choices := make([]catalog.DishOptionChoice, 0, len(o.Choices))
		var choiceErrs []error
		for _, c := range o.Choices {
			choice, err := catalog.NewDishOptionChoice(c.Name, priceFromPtr(c.Extra))
			if err != nil {
				choiceErrs = append(choiceErrs, err)
				continue
			}
			choices = append(choices, choice)
		}
		if err := errors.Join(choiceErrs...); err != nil {
			return nil, err
		}

		option, err := catalog.NewDishOption(o.Name, priceFromPtr(o.Extra), choices)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	return catalog.NewDish(
		kernel.ID(dto.ID),
		kernel.ID(dto.RestaurantID),
		dto.Name,
		kernel.Price(dto.Price),
		options,
	)
}

// DishFromDomain is the inverse of the read mapping. The catalog service and
// integration tests use it to seed dishes.
func DishFromDomain(d *catalog.Dish) DishDTO {
	options := d.Options()
	dto := DishDTO{
		ID:           d.ID().Int64(),
		RestaurantID: d.RestaurantID().Int64(),
		Name:         d.Name(),
		Price:        d.Price().Int64(),
		Options:      make([]DishOptionDTO, 0, len(options)),
	}
	for _, o := range options {
		opt := DishOptionDTO{Name: o.Name(), Extra: priceToPtr(o.Extra())}
		for _, c := range o.Choices() {
			opt.Choices = append(opt.Choices, DishChoiceDTO{Name: c.Name(), Extra: priceToPtr(c.Extra())})
		}
		dto.Options = append(dto.Options, opt)
	}
	return dto
}

func priceFromPtr(p *int64) kernel.Optional[kernel.Price] {
	if p == nil {
		return kernel.None[kernel.Price]()
	}
	return kernel.Some(kernel.Price(*p))
}

func priceToPtr(p kernel.Price, ok bool) *int64 {
	if !ok {
		return nil
	}
	v := p.Int64()
	return &v
}
