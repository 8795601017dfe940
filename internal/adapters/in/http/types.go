package http

import (
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Result is the envelope every endpoint answers with.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type ItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

type CreateOrderItem struct {
	DishID  int64        `json:"dishId"`
	Options []ItemOption `json:"options"`
}

type CreateOrderRequest struct {
	RestaurantID int64             `json:"restaurantId"`
	Items        []CreateOrderItem `json:"items"`
}

type CreateOrderResponse struct {
	Result
	OrderID int64 `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItem struct {
	ID      int64        `json:"id"`
	DishID  int64        `json:"dishId"`
	Options []ItemOption `json:"options"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	RestaurantID int64       `json:"restaurantId"`
	DelivererID  *int64      `json:"delivererId"`
	Status       string      `json:"status"`
	Total        int64       `json:"total"`
	Items        []OrderItem `json:"items"`
}

type GetOrdersResponse struct {
	Result
	Orders []Order `json:"orders"`
}

type FindOrderResponse struct {
	Result
	Order Order `json:"order"`
}

func (r CreateOrderRequest) items() []commands.CreateOrderItem {
	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		selections := make([]order.Selection, 0, len(item.Options))
		for _, opt := range item.Options {
			selections = append(selections, order.NewSelection(opt.Name, kernel.FromPtr(opt.Choice)))
		}
		items = append(items, commands.CreateOrderItem{
			DishID:     kernel.ID(item.DishID),
			Selections: selections,
		})
	}
	return items
}

func toOrder(resp queries.OrderResponse) Order {
	out := Order{
		ID:           resp.ID.Int64(),
		CustomerID:   resp.CustomerID.Int64(),
		RestaurantID: resp.RestaurantID.Int64(),
		Status:       resp.Status.String(),
		Total:        resp.Total.Int64(),
		Items:        make([]OrderItem, 0, len(resp.Items)),
	}
	if id, ok := resp.DelivererID.Get(); ok {
		raw := id.Int64()
		out.DelivererID = &raw
	}

	for _, item := range resp.Items {
		options := make([]ItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, ItemOption{Name: opt.Name, Choice: opt.Choice.Ptr()})
		}
		out.Items = append(out.Items, OrderItem{
			ID:      item.ID.Int64(),
			DishID:  item.DishID.Int64(),
			Options: options,
		})
	}
	return out
}
