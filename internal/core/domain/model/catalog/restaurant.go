package catalog

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the seller an order is placed with.
type Restaurant struct {
	id      kernel.ID
	ownerID kernel.ID
	name    string
	guard   guard.ConstructorGuard
}

func NewRestaurant(id, ownerID kernel.ID, name string) (*Restaurant, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:      id,
		ownerID: ownerID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.ID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.ID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

// IsOwnedBy reports whether userID owns the restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.ID) bool {
	return r.ownerID == userID
}
