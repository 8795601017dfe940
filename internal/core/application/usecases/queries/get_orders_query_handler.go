package queries

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

const opGetOrders = "get orders"

// GetOrdersQueryHandler lists orders scoped by the actor role:
// clients get their own orders, owners the orders of one of their restaurants,
// delivery users the orders they took. An optional status narrows any listing.
type GetOrdersQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewGetOrdersQueryHandler(orders ports.OrderRepository, catalog ports.CatalogRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders, catalog: catalog}
}

// Handle returns the matching orders in ascending ID order. An owner asking for
// a restaurant that does not exist, or that it does not own, gets NotFound.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	resp, err := h.handle(ctx, query)
	return resp, errs.Normalize(opGetOrders, err)
}

func (h GetOrdersQueryHandler) handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := h.filterFor(ctx, query)
	if err != nil {
		return nil, err
	}

	found, err := h.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	status, hasStatus := query.Status()
	resp := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		if hasStatus && o.Status() != status {
			continue
		}
		resp = append(resp, newOrderResponse(o))
	}
	return resp, nil
}

func (h GetOrdersQueryHandler) filterFor(ctx context.Context, query GetOrdersQuery) (ports.OrderFilter, error) {
	actor := query.Actor()
	status, hasStatus := query.Status()

	withStatus := func(f ports.OrderFilter) ports.OrderFilter {
		if hasStatus {
			return f.WithStatus(status)
		}
		return f
	}

	switch actor.Role() {
	case user.Client:
		return withStatus(ports.OrdersOfCustomer(actor.ID())), nil
	case user.Delivery:
		return withStatus(ports.OrdersOfDeliverer(actor.ID())), nil
	case user.Owner:
		restaurantID, ok := query.RestaurantID()
		if !ok {
			return ports.OrderFilter{}, errs.NewValueIsRequiredError("restaurantId")
		}
		restaurant, err := h.catalog.GetRestaurant(ctx, restaurantID)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		if !restaurant.IsOwnedBy(actor.ID()) {
			return ports.OrderFilter{}, errs.NewObjectNotFoundError("restaurant", restaurantID)
		}
		// Restaurant listings are fetched whole and narrowed by status afterwards.
		return ports.OrdersOfRestaurant(restaurantID), nil
	case user.Unknown:
	}
	return ports.OrderFilter{}, errs.NewValueIsInvalidError("role")
}

