package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"dispatch/cmd"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, cfg cmd.Config) *cmd.CompositionRoot {
	t.Helper()
	root, err := cmd.NewCompositionRoot(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, root.Close()) })
	return root
}

func TestCompositionRoot_HandlersShareState(t *testing.T) {
	// Given
	ctx := t.Context()
	root := newRoot(t, cmd.Config{DepotLocation: "Depot"})

	addRoute, err := commands.NewAddRouteCommand("A", "B", 4)
	require.NoError(t, err)
	enqueue, err := commands.NewEnqueueOrderCommand("o1", "B")
	require.NoError(t, err)

	// When
	_, err = root.CreateAddRouteCommandHandler().Handle(ctx, addRoute)
	require.NoError(t, err)
	_, err = root.CreateEnqueueOrderCommandHandler().Handle(ctx, enqueue)
	require.NoError(t, err)

	// Then
	query, err := queries.NewShortestRouteQuery("A", "B")
	require.NoError(t, err)
	resp, err := root.CreateShortestRouteQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, 1, root.Queue().Len())
	assert.Equal(t, 1, root.Graph().EdgeCount())
}

func TestCompositionRoot_Instances_AreIndependent(t *testing.T) {
	first := newRoot(t, cmd.Config{})
	second := newRoot(t, cmd.Config{})

	addRoute, err := commands.NewAddRouteCommand("A", "B", 1)
	require.NoError(t, err)
	_, err = first.CreateAddRouteCommandHandler().Handle(t.Context(), addRoute)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Graph().EdgeCount())
	assert.Zero(t, second.Graph().EdgeCount())
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	t.Run("disabled without schedule", func(t *testing.T) {
		jm, err := newRoot(t, cmd.Config{DepotLocation: "Depot"}).CreateJobManager()

		require.NoError(t, err)
		assert.Zero(t, jm.Len())
	})

	t.Run("enabled with schedule", func(t *testing.T) {
		jm, err := newRoot(t, cmd.Config{DepotLocation: "Depot", DispatchSchedule: "@every 1h"}).CreateJobManager()

		require.NoError(t, err)
		assert.Equal(t, 1, jm.Len())
	})

	t.Run("depot required", func(t *testing.T) {
		_, err := newRoot(t, cmd.Config{DispatchSchedule: "@every 1h"}).CreateJobManager()

		require.Error(t, err)
	})
}

func TestCompositionRoot_ReadinessStartsUnset(t *testing.T) {
	root := newRoot(t, cmd.Config{})

	assert.False(t, root.Ready().IsSet())
}
