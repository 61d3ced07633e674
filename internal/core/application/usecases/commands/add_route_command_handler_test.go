package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddRouteCommand("Warehouse", "Loc1", 5)
	require.NoError(t, err)

	snapshot := []routing.Edge{{
		From:     kernel.MustNewLocation("Warehouse"),
		To:       kernel.MustNewLocation("Loc1"),
		Distance: kernel.MustNewDistance(5),
	}}

	graph := new(MockRouteGraph)
	graph.On("AddEdge", cmd.From(), cmd.To(), cmd.Distance()).Return().Once()
	graph.On("Edges").Return(snapshot).Once()

	h := commands.NewAddRouteCommandHandler(graph)
	edges, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, snapshot, edges)
	graph.AssertExpectations(t)
}

func TestAddRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	graph := new(MockRouteGraph)
	h := commands.NewAddRouteCommandHandler(graph)

	edges, err := h.Handle(t.Context(), commands.AddRouteCommand{})

	require.ErrorIs(t, err, commands.ErrAddRouteCommandIsNotConstructed)
	assert.Nil(t, edges)
	graph.AssertNotCalled(t, "AddEdge")
}

func TestAddRouteCommandHandler_Handle_WithRealGraph(t *testing.T) {
	// Given
	ctx := t.Context()
	graph := routing.NewGraph()
	h := commands.NewAddRouteCommandHandler(graph)

	// When
	for _, r := range []struct {
		from, to string
		distance float64
	}{
		{"A", "B", 5},
		{"B", "C", 3},
		{"A", "C", 10},
	} {
		cmd, err := commands.NewAddRouteCommand(r.from, r.to, r.distance)
		require.NoError(t, err)
		_, err = h.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	// Then
	d, found := graph.ShortestDistance(kernel.MustNewLocation("A"), kernel.MustNewLocation("C"))
	require.True(t, found)
	assert.InDelta(t, 8.0, d.Value(), 0)
	assert.Len(t, graph.Edges(), 3)
}
