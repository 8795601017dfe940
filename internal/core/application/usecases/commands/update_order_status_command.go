package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new status on behalf of actor.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   user.User
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(actor user.User, orderID kernel.ID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() user.User {
	return c.actor
}

func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
