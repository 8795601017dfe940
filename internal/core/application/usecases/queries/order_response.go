// Package queries contains the read side of the ordering core. Query handlers
// read through the repository ports and apply the same access policy as the
// commands before returning plain response values.
package queries

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           kernel.ID
	CustomerID   kernel.ID
	RestaurantID kernel.ID
	DelivererID  kernel.Optional[kernel.ID]
	Status       order.Status
	Total        kernel.Price
	Items        []OrderItemResponse
}

type OrderItemResponse struct {
	ID      kernel.ID
	DishID  kernel.ID
	Options []OrderItemOptionResponse
}

// OrderItemOptionResponse echoes a selection as the customer sent it.
type OrderItemOptionResponse struct {
	Name   string
	Choice kernel.Optional[string]
}

func newOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.Restaurant().ID(),
		DelivererID:  kernel.None[kernel.ID](),
		Status:       o.Status(),
		Total:        o.Total(),
	}
	if id, ok := o.Deliverer(); ok {
		resp.DelivererID = kernel.Some(id)
	}

	items := o.Items()
	resp.Items = make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		selections := item.Selections()
		options := make([]OrderItemOptionResponse, 0, len(selections))
		for _, s := range selections {
			opt := OrderItemOptionResponse{Name: s.OptionName(), Choice: kernel.None[string]()}
			if choice, ok := s.Choice(); ok {
				opt.Choice = kernel.Some(choice)
			}
			options = append(options, opt)
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:      item.ID(),
			DishID:  item.DishID(),
			Options: options,
		})
	}
	return resp
}
