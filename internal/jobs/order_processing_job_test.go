package jobs_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	graph *routing.Graph
	queue *order.Queue
	logs  *bytes.Buffer
	job   *jobs.OrderProcessingJob
}

func newFixture(t *testing.T, schedule string) fixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	graph := routing.NewGraph()
	queue := order.NewQueue()

	job := jobs.NewOrderProcessingJob(
		commands.NewProcessOrderCommandHandler(queue, ports.NopEventPublisher{}, slog.New(slog.NewTextHandler(io.Discard, nil))),
		queries.NewShortestRouteQueryHandler(graph),
		kernel.MustNewLocation("Depot"),
		schedule,
		logger,
	)

	return fixture{graph: graph, queue: queue, logs: logs, job: job}
}

func (f fixture) enqueue(t *testing.T, id, location string) {
	t.Helper()
	o, err := order.NewOrder(id, kernel.MustNewLocation(location))
	require.NoError(t, err)
	f.queue.Enqueue(o)
}

func TestOrderProcessingJob_ProcessNext_EmptyQueue(t *testing.T) {
	f := newFixture(t, "@every 1s")

	err := f.job.ProcessNext(t.Context())

	require.NoError(t, err)
	assert.Empty(t, f.logs.String())
}

func TestOrderProcessingJob_ProcessNext_RoutedOrder(t *testing.T) {
	// Given
	f := newFixture(t, "@every 1s")
	f.graph.AddEdge(kernel.MustNewLocation("Depot"), kernel.MustNewLocation("Hub"), kernel.MustNewDistance(2))
	f.graph.AddEdge(kernel.MustNewLocation("Hub"), kernel.MustNewLocation("Loc1"), kernel.MustNewDistance(3))
	f.enqueue(t, "o1", "Loc1")
	f.enqueue(t, "o2", "Loc2")

	// When
	err := f.job.ProcessNext(t.Context())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, f.queue.Len())
	assert.Contains(t, f.logs.String(), "Order dispatched")
	assert.Contains(t, f.logs.String(), "order_id=o1")
	assert.Contains(t, f.logs.String(), "distance=5")
}

func TestOrderProcessingJob_ProcessNext_UnreachableCustomer(t *testing.T) {
	f := newFixture(t, "@every 1s")
	f.enqueue(t, "o1", "Island")

	err := f.job.ProcessNext(t.Context())

	require.NoError(t, err)
	assert.Zero(t, f.queue.Len())
	assert.Contains(t, f.logs.String(), "No route available for order")
}

func TestOrderProcessingJob_Start_InvalidSchedule(t *testing.T) {
	f := newFixture(t, "not a schedule")

	err := f.job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func TestOrderProcessingJob_StartStop(t *testing.T) {
	f := newFixture(t, "@every 1h")

	require.NoError(t, f.job.Start())
	f.job.Stop()

	assert.Contains(t, f.logs.String(), "Order processing job started")
	assert.Contains(t, f.logs.String(), "Order processing job stopped")
}
