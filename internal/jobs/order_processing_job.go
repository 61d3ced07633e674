package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob takes one order off the queue per tick and looks up the
// route from the depot to the customer.
type OrderProcessingJob struct {
	processHandler       commands.ProcessOrderCommandHandler
	shortestRouteHandler queries.ShortestRouteQueryHandler
	depot                kernel.Location
	schedule             string
	cron                 *cron.Cron
	logger               *slog.Logger
}

// NewOrderProcessingJob creates the job. schedule is a six-field cron
// expression (seconds first) or a descriptor such as "@every 10s".
func NewOrderProcessingJob(
	processHandler commands.ProcessOrderCommandHandler,
	shortestRouteHandler queries.ShortestRouteQueryHandler,
	depot kernel.Location,
	schedule string,
	logger *slog.Logger,
) *OrderProcessingJob {
	return &OrderProcessingJob{
		processHandler:       processHandler,
		shortestRouteHandler: shortestRouteHandler,
		depot:                depot,
		schedule:             schedule,
		cron:                 cron.New(cron.WithSeconds()),
		logger:               logger.With("component", "order_processing_job"),
	}
}

// Start schedules the job. It fails on an unparsable schedule.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.ProcessNext(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order processing job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started",
		"schedule", j.schedule,
		"depot", j.depot.ID(),
	)
	return nil
}

// Stop stops scheduling and waits for a running tick to finish.
func (j *OrderProcessingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}

// ProcessNext runs a single tick. An empty queue is not an error.
func (j *OrderProcessingJob) ProcessNext(ctx context.Context) error {
	o, ok, err := j.processHandler.Handle(ctx, commands.NewProcessOrderCommand())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	query, err := queries.NewShortestRouteQuery(j.depot.ID(), o.CustomerLocation().ID())
	if err != nil {
		return err
	}
	resp, err := j.shortestRouteHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if !resp.Found {
		j.logger.WarnContext(ctx, "No route available for order",
			"order_id", o.ID(),
			"from", j.depot.ID(),
			"to", o.CustomerLocation().ID(),
		)
		return nil
	}

	j.logger.InfoContext(ctx, "Order dispatched",
		"order_id", o.ID(),
		"from", j.depot.ID(),
		"to", o.CustomerLocation().ID(),
		"distance", resp.Distance.Value(),
	)
	return nil
}
