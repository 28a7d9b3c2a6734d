package camunda

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"

	"career-workers/internal/common/observability"
)

// JobHandler processes a single Zeebe job. Handlers report success and
// failure to the broker themselves (complete, fail, or throw error), so
// there is nothing to return.
type JobHandler func(client worker.JobClient, job entities.Job)

// CamundaWorker owns a single open job worker subscription.
type CamundaWorker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// NewWorker opens a job worker subscription for the given task type.
// The zbc.Client is shared across workers and is not owned here. When obs
// is non-nil every handled job is recorded with its wall-clock duration.
func NewWorker(
	client zbc.Client,
	taskType string,
	maxJobsActive int,
	timeout time.Duration,
	handler JobHandler,
	obs *observability.Observability,
	logger *zap.Logger,
) *CamundaWorker {
	wrapped := worker.JobHandler(handler)
	if obs != nil {
		wrapped = func(client worker.JobClient, job entities.Job) {
			start := time.Now()
			handler(client, job)
			obs.RecordJobProcessed(context.Background(), taskType)
			obs.RecordJobDuration(context.Background(), taskType, time.Since(start))
		}
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(wrapped).
		MaxJobsActive(maxJobsActive).
		Timeout(timeout).
		Open()

	logger.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", maxJobsActive),
		zap.Duration("timeout", timeout),
	)

	return &CamundaWorker{
		worker:   jobWorker,
		logger:   logger,
		taskType: taskType,
	}
}

// Stop closes the job worker subscription. In-flight jobs are drained by
// the Zeebe client before Close returns.
func (w *CamundaWorker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
}
