package queries_test

import (
	"context"
	"testing"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateDeliverer(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*catalog.Restaurant)
	return r, args.Error(1)
}

func (m *MockCatalogRepository) GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*catalog.Dish)
	return d, args.Error(1)
}

const (
	restaurantID kernel.ID = 1
	ownerID      kernel.ID = 100
	clientID     kernel.ID = 7
	courierID    kernel.ID = 9
)

func newUser(t *testing.T, id kernel.ID, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(id, role)
	require.NoError(t, err)
	return u
}

func restoreOrder(
	t *testing.T,
	id kernel.ID,
	customerID kernel.ID,
	status order.Status,
	deliverer kernel.Optional[kernel.ID],
) *order.Order {
	t.Helper()
	ref, err := order.NewRestaurantRef(restaurantID, ownerID)
	require.NoError(t, err)
	item, err := order.RestoreItem(id*10, 3, []order.Selection{
		order.NewSelection("Size", kernel.Some("L")),
		order.NewSelection("Extra cheese", kernel.None[string]()),
	})
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, customerID, ref, deliverer, []order.Item{item}, 1200, status)
	require.NoError(t, err)
	return o
}
