// internal/workers/assessment/summarize-profile/handler.go
package summarizeprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-workers/internal/assessment"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "summarize-profile"

	profileCachePrefix = "psych:profile:"
)

var (
	ErrUnknownTestType = errors.New("UNKNOWN_TEST_TYPE")
)

type Handler struct {
	config    *Config
	redis     *redis.Client
	framework *assessment.Framework
	logger    logger.Logger
}

func NewHandler(config *Config, redisClient *redis.Client, framework *assessment.Framework, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		redis:     redisClient,
		framework: framework,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.failJob(client, job, errorCode(err), err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile, err := h.framework.Summarize(input.Submissions)
	if err != nil {
		var unknown *assessment.UnknownTestTypeError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTestType, unknown.TestType)
		}
		return nil, err
	}

	h.cacheProfile(ctx, input.UserID, profile)

	h.logger.Info("psychometric profile summarized", map[string]interface{}{
		"userId":      input.UserID,
		"submissions": len(input.Submissions),
		"insights":    len(profile.Insights),
	})

	return &Output{
		UserID:  input.UserID,
		Profile: profile,
	}, nil
}

// cacheProfile stores the summary for downstream recommendation workers.
// Cache failures never fail the job.
func (h *Handler) cacheProfile(ctx context.Context, userID string, profile *models.PsychProfile) {
	if userID == "" || h.redis == nil {
		return
	}

	data, err := json.Marshal(profile)
	if err != nil {
		h.logger.Warn("failed to marshal profile for cache", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
		return
	}

	if err := h.redis.Set(ctx, profileCachePrefix+userID, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("failed to cache profile", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
	}
}

func errorCode(err error) string {
	if errors.Is(err, ErrUnknownTestType) {
		return "UNKNOWN_TEST_TYPE"
	}
	return "SCORING_FAILED"
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

// Execute exposes the summarization path for integration tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
