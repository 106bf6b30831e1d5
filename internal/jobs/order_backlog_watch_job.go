package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBacklogWatchJob periodically reports the open order backlog.
// A growing backlog in one status points at a stuck lifecycle step.
type OrderBacklogWatchJob struct {
	handler queries.GetUncompletedOrdersQueryHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewOrderBacklogWatchJob creates a backlog watch job with the given cron
// spec (standard five-field format, e.g. "* * * * *" for every minute).
func NewOrderBacklogWatchJob(handler queries.GetUncompletedOrdersQueryHandler, spec string, logger *slog.Logger) *OrderBacklogWatchJob {
	return &OrderBacklogWatchJob{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger.With("component", "order_backlog_watch_job"),
	}
}

// Start schedules the backlog report.
func (j *OrderBacklogWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		query := queries.NewGetUncompletedOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[o.Status]++
		}

		j.logger.InfoContext(ctx, "Order backlog", "open", len(orders), "by_status", byStatus)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog watch job started", "spec", j.spec)
	return nil
}

// Stop stops the backlog watch job.
func (j *OrderBacklogWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog watch job stopped")
}
