package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line: a dish and the options picked for it.
type CreateOrderItem struct {
	DishID     kernel.ID
	Selections []order.Selection
}

// CreateOrderCommand asks to place an order at a restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customer, restaurantID, []CreateOrderItem{
//	    {DishID: 3, Selections: []order.Selection{order.NewSelection("Size", kernel.Some("L"))}},
//	})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer     user.User
	restaurantID kernel.ID
	items        []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer, the restaurant ID and every dish ID.
// An empty item list is valid and yields a zero-total order.
func NewCreateOrderCommand(customer user.User, restaurantID kernel.ID, items []CreateOrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() user.User {
	return c.customer
}

func (c CreateOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

func (c CreateOrderCommand) Items() []CreateOrderItem {
	return append([]CreateOrderItem(nil), c.items...)
}

func (c *CreateOrderCommand) setCustomer(customer user.User) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	for _, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]CreateOrderItem(nil), items...)
	return nil
}
