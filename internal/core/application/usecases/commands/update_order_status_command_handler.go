package commands

import (
	"context"

	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"
)

const opUpdateOrderStatus = "update order status"

// UpdateOrderStatusCommandHandler applies a status change after checking that the
// actor can see the order and that its role may request the target status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	return errs.Normalize(opUpdateOrderStatus, h.handle(ctx, cmd))
}

func (h UpdateOrderStatusCommandHandler) handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	actor := cmd.Actor()
	if !h.policy.CanView(actor, o) {
		return errs.NewForbiddenError(opUpdateOrderStatus, "order is not visible to the user")
	}

	if !h.policy.CanTransition(actor.Role(), o.Status(), cmd.Status()) {
		return errs.NewForbiddenError(opUpdateOrderStatus,
			"role "+actor.Role().String()+" cannot set status "+cmd.Status().String())
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
