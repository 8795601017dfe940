package queries

import (
	"context"

	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

const opFindOrder = "find order"

type FindOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

func NewFindOrderQueryHandler(orders ports.OrderRepository) FindOrderQueryHandler {
	return FindOrderQueryHandler{orders: orders, policy: services.NewAccessPolicy()}
}

// Handle returns the order if it exists and the actor may see it.
func (h FindOrderQueryHandler) Handle(ctx context.Context, query FindOrderQuery) (OrderResponse, error) {
	resp, err := h.handle(ctx, query)
	return resp, errs.Normalize(opFindOrder, err)
}

func (h FindOrderQueryHandler) handle(ctx context.Context, query FindOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !h.policy.CanView(query.Actor(), o) {
		return OrderResponse{}, errs.NewForbiddenError(opFindOrder, "order is not visible to the user")
	}

	return newOrderResponse(o), nil
}
