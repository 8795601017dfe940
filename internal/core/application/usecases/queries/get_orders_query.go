package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders the actor is a party to.
//
// Example:
//
//	query, err := NewGetOrdersQuery(owner, kernel.Some(restaurantID), kernel.Some(order.Cooking))
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actor        user.User
	restaurantID kernel.Optional[kernel.ID]
	status       kernel.Optional[order.Status]

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery validates the actor and any filter that is present.
// Whether restaurantID is required depends on the actor role and is checked by
// the handler.
func NewGetOrdersQuery(
	actor user.User,
	restaurantID kernel.Optional[kernel.ID],
	status kernel.Optional[order.Status],
) (GetOrdersQuery, error) {
	var errList []error
	errList = append(errList, actor.Validate())
	if id, ok := restaurantID.Get(); ok {
		errList = append(errList, id.Validate())
	}
	if s, ok := status.Get(); ok {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor:        actor,
		restaurantID: restaurantID,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() user.User {
	return q.actor
}

func (q GetOrdersQuery) RestaurantID() (kernel.ID, bool) {
	return q.restaurantID.Get()
}

func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status.Get()
}
