package jobs

import (
	"fmt"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderBacklogWatchJob *OrderBacklogWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	backlogSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderBacklogWatchJob: NewOrderBacklogWatchJob(getUncompletedOrdersHandler, backlogSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogWatchJob.Stop()
}
