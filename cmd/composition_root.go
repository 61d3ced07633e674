package cmd

import (
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/seed"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/tevino/abool"
)

// CompositionRoot owns the in-memory state of one service instance and wires
// it into handlers, jobs and adapters.
type CompositionRoot struct {
	cfg       Config
	logger    *slog.Logger
	graph     *routing.Graph
	queue     *order.Queue
	publisher ports.EventPublisher
	closer    func() error
	ready     *abool.AtomicBool
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:       cfg,
		logger:    logger,
		graph:     routing.NewGraph(),
		queue:     order.NewQueue(),
		publisher: ports.NopEventPublisher{},
		closer:    func() error { return nil },
		ready:     abool.New(),
	}

	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		publisher, err := kafka.NewOrderEventPublisher(brokers, cfg.KafkaOrderEventsTopic)
		if err != nil {
			return nil, fmt.Errorf("create order event publisher: %w", err)
		}
		root.publisher = publisher
		root.closer = publisher.Close
	}

	return root, nil
}

func (c *CompositionRoot) Graph() *routing.Graph {
	return c.graph
}

func (c *CompositionRoot) Queue() *order.Queue {
	return c.queue
}

// Ready is the readiness flag reported by /health.
func (c *CompositionRoot) Ready() *abool.AtomicBool {
	return c.ready
}

func (c *CompositionRoot) CreateAddRouteCommandHandler() commands.AddRouteCommandHandler {
	return commands.NewAddRouteCommandHandler(c.graph)
}

func (c *CompositionRoot) CreateEnqueueOrderCommandHandler() commands.EnqueueOrderCommandHandler {
	return commands.NewEnqueueOrderCommandHandler(c.queue, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.queue, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateShortestRouteQueryHandler() queries.ShortestRouteQueryHandler {
	return queries.NewShortestRouteQueryHandler(c.graph)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.graph)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.queue)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddRouteCommandHandler(),
		c.CreateEnqueueOrderCommandHandler(),
		c.CreateProcessOrderCommandHandler(),
		c.CreateShortestRouteQueryHandler(),
		c.CreateGetRoutesQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.ready,
	)
}

func (c *CompositionRoot) CreateSeedLoader() seed.Loader {
	return seed.NewLoader(c.CreateAddRouteCommandHandler())
}

// CreateJobManager returns a manager holding the order processing job when
// DISPATCH_SCHEDULE is set, and an empty manager otherwise.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.cfg.DispatchSchedule == "" {
		return jobs.NewJobManager(), nil
	}

	depot, err := kernel.NewLocation(c.cfg.DepotLocation)
	if err != nil {
		return nil, fmt.Errorf("DEPOT_LOCATION: %w", err)
	}

	return jobs.NewJobManager(jobs.NewOrderProcessingJob(
		c.CreateProcessOrderCommandHandler(),
		c.CreateShortestRouteQueryHandler(),
		depot,
		c.cfg.DispatchSchedule,
		c.logger,
	)), nil
}

// Close releases the event publisher.
func (c *CompositionRoot) Close() error {
	return c.closer()
}
