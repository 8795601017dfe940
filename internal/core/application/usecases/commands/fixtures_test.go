package commands_test

import (
	"testing"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

const (
	restaurantID kernel.ID = 1
	ownerID      kernel.ID = 100
	clientID     kernel.ID = 7
	courierID    kernel.ID = 9
	orderID      kernel.ID = 42
)

func newUser(t *testing.T, id kernel.ID, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(id, role)
	require.NoError(t, err)
	return u
}

func newRestaurant(t *testing.T) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(restaurantID, ownerID, "Bab")
	require.NoError(t, err)
	return r
}

// newPizza costs 1000 with a Size option whose L choice adds 200.
func newPizza(t *testing.T) *catalog.Dish {
	t.Helper()
	large, err := catalog.NewDishOptionChoice("L", kernel.Some(kernel.Price(200)))
	require.NoError(t, err)
	size, err := catalog.NewDishOption("Size", kernel.None[kernel.Price](), []catalog.DishOptionChoice{large})
	require.NoError(t, err)
	d, err := catalog.NewDish(3, restaurantID, "Pizza", 1000, []catalog.DishOption{size})
	require.NoError(t, err)
	return d
}

func restoreOrder(t *testing.T, status order.Status, deliverer kernel.Optional[kernel.ID]) *order.Order {
	t.Helper()
	ref, err := order.NewRestaurantRef(restaurantID, ownerID)
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, clientID, ref, deliverer, nil, 1200, status)
	require.NoError(t, err)
	return o
}
