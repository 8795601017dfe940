package commands

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"
)

const opCreateOrder = "create order"

// CreateOrderCommandHandler prices and persists a new order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindNotFound:
//	    // restaurant or dish missing
//	case errs.KindNone:
//	    fmt.Printf("order %s placed", orderID)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingEngine(),
	}
}

// Handle resolves the restaurant and every dish, prices the lines, and writes the
// order with its items in one transaction. It returns the new order ID.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	id, err := h.handle(ctx, cmd)
	return id, errs.Normalize(opCreateOrder, err)
}

func (h CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.Customer().Role() != user.Client {
		return 0, errs.NewForbiddenError(opCreateOrder, "only clients can place orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	restaurant, err := catalogRepo.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	requested := cmd.Items()
	items := make([]order.Item, 0, len(requested))
	lines := make([]services.Line, 0, len(requested))
	for _, req := range requested {
		dish, dishErr := catalogRepo.GetDish(ctx, req.DishID)
		if dishErr != nil {
			return 0, dishErr
		}

		item, itemErr := order.NewItem(dish.ID(), req.Selections)
		if itemErr != nil {
			return 0, itemErr
		}

		items = append(items, item)
		lines = append(lines, services.Line{Dish: dish, Selections: req.Selections})
	}

	newOrder, err := order.NewOrder(cmd.Customer().ID(), restaurant, items, h.pricing.PriceOrder(lines))
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
