// Package http exposes the ordering workflow over echo. Handlers translate
// JSON requests into commands and queries and render every outcome in the
// {ok, error} envelope, with the HTTP status chosen by the error kind.
package http

import (
	"context"
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}
	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	takeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TakeOrderCommand) error
	}
	getOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error)
	}
	findOrderHandler interface {
		Handle(ctx context.Context, query queries.FindOrderQuery) (queries.OrderResponse, error)
	}
)

// Server holds the use case handlers behind the order endpoints.
type Server struct {
	// Command handlers
	createOrderHandler       createOrderHandler
	updateOrderStatusHandler updateOrderStatusHandler
	takeOrderHandler         takeOrderHandler

	// Query handlers
	getOrdersHandler getOrdersHandler
	findOrderHandler findOrderHandler
}

func NewServer(
	createOrder createOrderHandler,
	updateOrderStatus updateOrderStatusHandler,
	takeOrder takeOrderHandler,
	getOrders getOrdersHandler,
	findOrder findOrderHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrder,
		updateOrderStatusHandler: updateOrderStatus,
		takeOrderHandler:         takeOrder,
		getOrdersHandler:         getOrders,
		findOrderHandler:         findOrder,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body CreateOrderRequest
	if err := c.Bind(&body); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	u, _ := currentUser(c)
	cmd, err := commands.NewCreateOrderCommand(u, kernel.ID(body.RestaurantID), body.items())
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{Result: Result{OK: true}, OrderID: orderID.Int64()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	var restaurantID *int64
	if err := runtime.BindQueryParameter("form", true, false, "restaurantId", c.QueryParams(), &restaurantID); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	status := kernel.None[order.Status]()
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(c, err)
		}
		status = kernel.Some(parsed)
	}

	restaurant := kernel.None[kernel.ID]()
	if restaurantID != nil {
		restaurant = kernel.Some(kernel.ID(*restaurantID))
	}

	u, _ := currentUser(c)
	query, err := queries.NewGetOrdersQuery(u, restaurant, status)
	if err != nil {
		return writeError(c, err)
	}

	found, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	orders := make([]Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, toOrder(o))
	}
	return c.JSON(http.StatusOK, GetOrdersResponse{Result: Result{OK: true}, Orders: orders})
}

// FindOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) FindOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	u, _ := currentUser(c)
	query, err := queries.NewFindOrderQuery(u, orderID)
	if err != nil {
		return writeError(c, err)
	}

	found, err := s.findOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, FindOrderResponse{Result: Result{OK: true}, Order: toOrder(found)})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var body UpdateOrderStatusRequest
	if err = c.Bind(&body); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeError(c, err)
	}

	u, _ := currentUser(c)
	cmd, err := commands.NewUpdateOrderStatusCommand(u, orderID, status)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Result{OK: true})
}

// TakeOrder handles POST /api/v1/orders/{orderId}/take.
func (s *Server) TakeOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	u, _ := currentUser(c)
	cmd, err := commands.NewTakeOrderCommand(u, orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.takeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Result{OK: true})
}

func bindOrderID(c echo.Context) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return kernel.NewID(raw)
}
