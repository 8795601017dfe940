package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand asks to make the deliverer responsible for an order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	deliverer user.User
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(deliverer user.User, orderID kernel.ID) (TakeOrderCommand, error) {
	if err := errors.Join(deliverer.Validate(), orderID.Validate()); err != nil {
		return TakeOrderCommand{}, err
	}

	return TakeOrderCommand{
		deliverer: deliverer,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Deliverer() user.User {
	return c.deliverer
}

func (c TakeOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
