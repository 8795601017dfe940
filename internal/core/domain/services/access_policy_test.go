package services_test

import (
	"fmt"
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerID  kernel.ID = 1
	ownerID     kernel.ID = 2
	delivererID kernel.ID = 3
	strangerID  kernel.ID = 4
)

func newUser(t *testing.T, id kernel.ID, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(id, role)
	require.NoError(t, err)
	return u
}

func newOrder(t *testing.T, deliverer kernel.Optional[kernel.ID]) *order.Order {
	t.Helper()
	ref, err := order.NewRestaurantRef(10, ownerID)
	require.NoError(t, err)
	o, err := order.RestoreOrder(100, customerID, ref, deliverer, nil, 0, order.Pending)
	require.NoError(t, err)
	return o
}

func TestAccessPolicy_CanView(t *testing.T) {
	policy := services.NewAccessPolicy()
	taken := newOrder(t, kernel.Some(delivererID))
	untaken := newOrder(t, kernel.None[kernel.ID]())

	testCases := []struct {
		name  string
		user  user.User
		order *order.Order
		want  bool
	}{
		{"client who is the customer", newUser(t, customerID, user.Client), taken, true},
		{"other client", newUser(t, strangerID, user.Client), taken, false},
		{"owner of the restaurant", newUser(t, ownerID, user.Owner), taken, true},
		{"owner of another restaurant", newUser(t, strangerID, user.Owner), taken, false},
		{"deliverer of the order", newUser(t, delivererID, user.Delivery), taken, true},
		{"other deliverer", newUser(t, strangerID, user.Delivery), taken, false},
		{"deliverer before assignment", newUser(t, delivererID, user.Delivery), untaken, false},
		{"customer id held by an owner", newUser(t, customerID, user.Owner), taken, false},
		{"owner id held by a client", newUser(t, ownerID, user.Client), taken, false},
		{"zero value user", user.User{}, taken, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.CanView(tc.user, tc.order))
		})
	}

	assert.False(t, policy.CanView(newUser(t, customerID, user.Client), nil))
}

func TestAccessPolicy_CanTransition(t *testing.T) {
	policy := services.NewAccessPolicy()

	allowed := map[user.Role][]order.Status{
		user.Client:   nil,
		user.Owner:    {order.Cooking, order.Cooked},
		user.Delivery: {order.PickedUp, order.Delivered},
	}

	for role, targets := range allowed {
		for _, current := range order.Statuses() {
			for _, target := range order.Statuses() {
				name := fmt.Sprintf("%s %s->%s", role, current, target)
				want := contains(targets, target)
				assert.Equal(t, want, policy.CanTransition(role, current, target), name)
			}
		}
	}

	t.Run("owner", func(t *testing.T) {
		assert.True(t, policy.CanTransition(user.Owner, order.Delivered, order.Cooking))
		assert.False(t, policy.CanTransition(user.Owner, order.Pending, order.Delivered))
	})

	t.Run("delivery ignores the current status", func(t *testing.T) {
		assert.True(t, policy.CanTransition(user.Delivery, order.Pending, order.PickedUp))
		assert.True(t, policy.CanTransition(user.Delivery, order.Pending, order.Delivered))
		assert.True(t, policy.CanTransition(user.Delivery, order.Delivered, order.Delivered))
	})

	t.Run("unknown role and status", func(t *testing.T) {
		assert.False(t, policy.CanTransition(user.Unknown, order.Pending, order.Cooking))
		assert.False(t, policy.CanTransition(user.Owner, order.Pending, order.Unknown))
	})
}

func TestAccessPolicy_AllowedTargets(t *testing.T) {
	policy := services.NewAccessPolicy()

	assert.Empty(t, policy.AllowedTargets(user.Client))
	assert.Equal(t, []order.Status{order.Cooking, order.Cooked}, policy.AllowedTargets(user.Owner))
	assert.Equal(t, []order.Status{order.PickedUp, order.Delivered}, policy.AllowedTargets(user.Delivery))
	assert.Nil(t, policy.AllowedTargets(user.Unknown))
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, x := range statuses {
		if x == s {
			return true
		}
	}
	return false
}
