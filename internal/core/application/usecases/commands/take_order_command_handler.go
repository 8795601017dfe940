package commands

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

const opTakeOrder = "take order"

// TakeOrderCommandHandler assigns a delivery user to an order that has none.
// Once taken, the order becomes visible to that deliverer.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{uowFactory: uowFactory}
}

func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	return errs.Normalize(opTakeOrder, h.handle(ctx, cmd))
}

func (h TakeOrderCommandHandler) handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deliverer := cmd.Deliverer()
	if deliverer.Role() != user.Delivery {
		return errs.NewForbiddenError(opTakeOrder, "only delivery users can take orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignDeliverer(deliverer.ID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateDeliverer(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
