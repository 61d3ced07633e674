package commands_test

import (
	"context"
	"io"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRouteGraph struct{ mock.Mock }

func (m *MockRouteGraph) AddEdge(from, to kernel.Location, distance kernel.Distance) {
	m.Called(from, to, distance)
}

func (m *MockRouteGraph) ShortestDistance(start, end kernel.Location) (kernel.Distance, bool) {
	args := m.Called(start, end)
	return args.Get(0).(kernel.Distance), args.Bool(1)
}

func (m *MockRouteGraph) Edges() []routing.Edge {
	args := m.Called()
	return args.Get(0).([]routing.Edge)
}

type MockOrderQueue struct{ mock.Mock }

func (m *MockOrderQueue) Enqueue(o order.Order) []order.Order {
	args := m.Called(o)
	return args.Get(0).([]order.Order)
}

func (m *MockOrderQueue) Dequeue() (order.Order, bool) {
	args := m.Called()
	return args.Get(0).(order.Order), args.Bool(1)
}

func (m *MockOrderQueue) Snapshot() []order.Order {
	args := m.Called()
	return args.Get(0).([]order.Order)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
