package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	fulfillmentDigestJob *FulfillmentDigestJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(db *gorm.DB, digestSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		fulfillmentDigestJob: NewFulfillmentDigestJob(db, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fulfillmentDigestJob.Stop()
}
