package catalog

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a purchasable item with a base price and an ordered list of options.
type Dish struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Price
	options      []DishOption
	guard        guard.ConstructorGuard
}

func NewDish(id, restaurantID kernel.ID, name string, price kernel.Price, options []DishOption) (*Dish, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate(), price.Validate()); err != nil {
		return nil, err
	}

	return &Dish{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		options:      append([]DishOption(nil), options...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.ID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

// Price is the base price before any option extras.
func (d *Dish) Price() kernel.Price {
	return d.price
}

// Options returns a copy of the dish options in catalog order.
func (d *Dish) Options() []DishOption {
	return append([]DishOption(nil), d.options...)
}

// FindOption looks an option up by exact name.
func (d *Dish) FindOption(name string) (DishOption, bool) {
	for _, o := range d.options {
		if o.name == name {
			return o, true
		}
	}
	return DishOption{}, false
}
