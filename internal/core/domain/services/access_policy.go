package services

import (
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

// capability is what a role may do with an order.
type capability struct {
	// canView decides visibility from the order's parties.
	canView func(u user.User, o *order.Order) bool
	// targets are the statuses the role may request.
	targets map[order.Status]struct{}
}

// AccessPolicy answers visibility and transition questions from a capability
// table keyed by role. Roles missing from the table can do nothing.
type AccessPolicy struct {
	capabilities map[user.Role]capability
}

// NewAccessPolicy returns the policy of the platform:
//
//	Role      Sees orders where           May set status to
//	Client    it is the customer          nothing
//	Owner     it owns the restaurant      Cooking, Cooked
//	Delivery  it is the deliverer         PickedUp, Delivered
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{
		capabilities: map[user.Role]capability{
			user.Client: {
				canView: func(u user.User, o *order.Order) bool {
					return u.Is(o.CustomerID())
				},
				targets: statusSet(),
			},
			user.Owner: {
				canView: func(u user.User, o *order.Order) bool {
					return u.Is(o.Restaurant().OwnerID())
				},
				targets: statusSet(order.Cooking, order.Cooked),
			},
			user.Delivery: {
				canView: func(u user.User, o *order.Order) bool {
					id, ok := o.Deliverer()
					return ok && u.Is(id)
				},
				targets: statusSet(order.PickedUp, order.Delivered),
			},
		},
	}
}

// CanView reports whether u may see o.
func (p AccessPolicy) CanView(u user.User, o *order.Order) bool {
	c, ok := p.capabilities[u.Role()]
	if !ok || o == nil {
		return false
	}
	return c.canView(u, o)
}

// CanTransition reports whether role may move an order to target. The current
// status is deliberately not consulted: a deliverer may mark a Pending order
// Delivered, and Delivered may be restated.
func (p AccessPolicy) CanTransition(role user.Role, _ order.Status, target order.Status) bool {
	c, ok := p.capabilities[role]
	if !ok {
		return false
	}
	_, allowed := c.targets[target]
	return allowed
}

// AllowedTargets lists the statuses role may request, in lifecycle order.
func (p AccessPolicy) AllowedTargets(role user.Role) []order.Status {
	c, ok := p.capabilities[role]
	if !ok {
		return nil
	}

	targets := make([]order.Status, 0, len(c.targets))
	for _, s := range order.Statuses() {
		if _, allowed := c.targets[s]; allowed {
			targets = append(targets, s)
		}
	}
	return targets
}

func statusSet(statuses ...order.Status) map[order.Status]struct{} {
	set := make(map[order.Status]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}
