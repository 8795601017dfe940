package http_test

import (
	"context"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockTakeOrderHandler struct{ mock.Mock }

func (m *MockTakeOrderHandler) Handle(ctx context.Context, cmd commands.TakeOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.OrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFindOrderHandler struct{ mock.Mock }

func (m *MockFindOrderHandler) Handle(ctx context.Context, query queries.FindOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}
