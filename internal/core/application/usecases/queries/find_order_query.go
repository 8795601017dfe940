package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrFindOrderQueryIsNotConstructed = errors.New(
	"FindOrderQuery must be created via NewFindOrderQuery constructor",
)

// FindOrderQuery fetches one order on behalf of actor.
type FindOrderQuery struct {
	actor   user.User
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewFindOrderQuery(actor user.User, orderID kernel.ID) (FindOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return FindOrderQuery{}, err
	}

	return FindOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderQueryIsNotConstructed)
}

func (q FindOrderQuery) Actor() user.User {
	return q.actor
}

func (q FindOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
