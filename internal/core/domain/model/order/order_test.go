package order_test

import (
	"testing"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurant(t *testing.T) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(1, 100, "Bab")
	require.NoError(t, err)
	return r
}

func newItem(t *testing.T, dishID kernel.ID) order.Item {
	t.Helper()
	item, err := order.NewItem(dishID, []order.Selection{
		order.NewSelection("Size", kernel.Some("L")),
	})
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("creates a pending order without deliverer", func(t *testing.T) {
		o, err := order.NewOrder(7, newRestaurant(t), []order.Item{newItem(t, 3)}, 1200)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, kernel.ID(7), o.CustomerID())
		assert.Equal(t, kernel.ID(1), o.Restaurant().ID())
		assert.Equal(t, kernel.ID(100), o.Restaurant().OwnerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, kernel.Price(1200), o.Total())
		assert.Len(t, o.Items(), 1)

		_, hasDeliverer := o.Deliverer()
		assert.False(t, hasDeliverer)
	})

	t.Run("accepts an empty item list", func(t *testing.T) {
		o, err := order.NewOrder(7, newRestaurant(t), nil, 0)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.Equal(t, kernel.ZeroPrice, o.Total())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := order.NewOrder(0, newRestaurant(t), nil, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewOrder(7, nil, nil, 0)
		require.ErrorIs(t, err, catalog.ErrRestaurantIsNotConstructed)
	})

	t.Run("records a created event stamped with the assigned id", func(t *testing.T) {
		o, err := order.NewOrder(7, newRestaurant(t), []order.Item{newItem(t, 3)}, 500)
		require.NoError(t, err)
		require.NoError(t, o.AssignID(11, []kernel.ID{21}))

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Name)
		assert.Equal(t, kernel.ID(11), events[0].OrderID)
		assert.Equal(t, order.Pending, events[0].Status)
		assert.Equal(t, kernel.Price(500), events[0].Total)
		require.NoError(t, events[0].ID.Validate())

		assert.Empty(t, o.PullDomainEvents())
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(7, newRestaurant(t), []order.Item{newItem(t, 3), newItem(t, 4)}, 0)
	require.NoError(t, err)

	require.Error(t, o.AssignID(1, []kernel.ID{1}), "item id count must match")
	require.NoError(t, o.AssignID(1, []kernel.ID{10, 11}))
	assert.Equal(t, kernel.ID(1), o.ID())
	assert.Equal(t, kernel.ID(11), o.Items()[1].ID())

	require.ErrorIs(t, o.AssignID(2, []kernel.ID{10, 11}), errs.ErrValueIsInvalid)
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(7, newRestaurant(t), nil, 0)
	require.NoError(t, err)
	o.PullDomainEvents()

	require.NoError(t, o.ChangeStatus(order.Delivered), "any target is accepted by the aggregate")
	assert.Equal(t, order.Delivered, o.Status())

	require.NoError(t, o.ChangeStatus(order.Delivered), "restating a status is allowed")

	require.ErrorIs(t, o.ChangeStatus(order.Unknown), errs.ErrValueIsInvalid)
	assert.Equal(t, order.Delivered, o.Status())

	events := o.PullDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, order.EventStatusChanged, events[0].Name)
}

func TestOrder_AssignDeliverer(t *testing.T) {
	o, err := order.NewOrder(7, newRestaurant(t), nil, 0)
	require.NoError(t, err)

	require.NoError(t, o.AssignDeliverer(9))
	id, ok := o.Deliverer()
	assert.True(t, ok)
	assert.Equal(t, kernel.ID(9), id)

	require.ErrorIs(t, o.AssignDeliverer(10), order.ErrDelivererAlreadyAssigned)
	id, _ = o.Deliverer()
	assert.Equal(t, kernel.ID(9), id)

	events := o.PullDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, order.EventTaken, events[1].Name)
	delivererID, ok := events[1].DelivererID.Get()
	assert.True(t, ok)
	assert.Equal(t, kernel.ID(9), delivererID)
}

func TestRestoreOrder(t *testing.T) {
	ref, err := order.NewRestaurantRef(1, 100)
	require.NoError(t, err)
	item, err := order.RestoreItem(21, 3, nil)
	require.NoError(t, err)

	t.Run("restores persisted state without events", func(t *testing.T) {
		o, err := order.RestoreOrder(11, 7, ref, kernel.Some(kernel.ID(9)), []order.Item{item}, 300, order.Cooked)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(11), o.ID())
		assert.Equal(t, order.Cooked, o.Status())
		assert.Empty(t, o.PullDomainEvents())
	})

	t.Run("rejects corrupt rows", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 7, ref, kernel.None[kernel.ID](), nil, 0, order.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
