package ports

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderScope names the party an order listing is scoped to.
type OrderScope int

const (
	ScopeCustomer OrderScope = iota + 1
	ScopeRestaurant
	ScopeDeliverer
)

// OrderFilter selects orders by exactly one scope, optionally narrowed to a status.
// Build it with OrdersOfCustomer, OrdersOfRestaurant or OrdersOfDeliverer.
type OrderFilter struct {
	scope   OrderScope
	partyID kernel.ID
	status  kernel.Optional[order.Status]
}

func OrdersOfCustomer(customerID kernel.ID) OrderFilter {
	return OrderFilter{scope: ScopeCustomer, partyID: customerID}
}

func OrdersOfRestaurant(restaurantID kernel.ID) OrderFilter {
	return OrderFilter{scope: ScopeRestaurant, partyID: restaurantID}
}

func OrdersOfDeliverer(delivererID kernel.ID) OrderFilter {
	return OrderFilter{scope: ScopeDeliverer, partyID: delivererID}
}

// WithStatus returns a copy of f that also requires the given status.
func (f OrderFilter) WithStatus(status order.Status) OrderFilter {
	f.status = kernel.Some(status)
	return f
}

func (f OrderFilter) Scope() OrderScope {
	return f.scope
}

func (f OrderFilter) PartyID() kernel.ID {
	return f.partyID
}

func (f OrderFilter) Status() (order.Status, bool) {
	return f.status.Get()
}
