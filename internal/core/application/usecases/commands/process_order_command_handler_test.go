package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	head, err := order.NewOrder("o1", kernel.MustNewLocation("Loc1"))
	require.NoError(t, err)

	queue := new(MockOrderQueue)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		queue.On("Dequeue").Return(head, true).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
			return e.Type == ports.OrderProcessed && e.OrderID == "o1"
		})).Return(nil).Once(),
	)

	h := commands.NewProcessOrderCommandHandler(queue, publisher, discardLogger())
	o, ok, err := h.Handle(ctx, commands.NewProcessOrderCommand())

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, head, o)
	queue.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	queue := new(MockOrderQueue)
	queue.On("Dequeue").Return(order.Order{}, false).Once()
	publisher := new(MockEventPublisher)

	h := commands.NewProcessOrderCommandHandler(queue, publisher, discardLogger())
	_, ok, err := h.Handle(t.Context(), commands.NewProcessOrderCommand())

	require.NoError(t, err)
	assert.False(t, ok)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProcessOrderCommandHandler_Handle_PublishErrorIsNotFatal(t *testing.T) {
	ctx := t.Context()
	head, err := order.NewOrder("o1", kernel.MustNewLocation("Loc1"))
	require.NoError(t, err)

	queue := new(MockOrderQueue)
	queue.On("Dequeue").Return(head, true).Once()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	h := commands.NewProcessOrderCommandHandler(queue, publisher, discardLogger())
	o, ok, err := h.Handle(ctx, commands.NewProcessOrderCommand())

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "o1", o.ID())
}

func TestProcessOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	queue := new(MockOrderQueue)
	h := commands.NewProcessOrderCommandHandler(queue, ports.NopEventPublisher{}, discardLogger())

	_, ok, err := h.Handle(t.Context(), commands.ProcessOrderCommand{})

	require.ErrorIs(t, err, commands.ErrProcessOrderCommandIsNotConstructed)
	assert.False(t, ok)
	queue.AssertNotCalled(t, "Dequeue")
}

func TestProcessOrderCommandHandler_Handle_FIFOScenario(t *testing.T) {
	// Given
	ctx := t.Context()
	queue := order.NewQueue()
	enqueue := commands.NewEnqueueOrderCommandHandler(queue, ports.NopEventPublisher{}, discardLogger())
	process := commands.NewProcessOrderCommandHandler(queue, ports.NopEventPublisher{}, discardLogger())

	for _, id := range []string{"o1", "o2"} {
		cmd, err := commands.NewEnqueueOrderCommand(id, "Loc-"+id)
		require.NoError(t, err)
		_, err = enqueue.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	// When
	first, ok1, err1 := process.Handle(ctx, commands.NewProcessOrderCommand())
	second, ok2, err2 := process.Handle(ctx, commands.NewProcessOrderCommand())
	_, ok3, err3 := process.Handle(ctx, commands.NewProcessOrderCommand())

	// Then
	require.NoError(t, errors.Join(err1, err2, err3))
	require.True(t, ok1)
	require.True(t, ok2)
	assert.False(t, ok3)
	assert.Equal(t, "o1", first.ID())
	assert.Equal(t, "o2", second.ID())
}
