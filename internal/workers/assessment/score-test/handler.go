// internal/workers/assessment/score-test/handler.go
package scoretest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-workers/internal/assessment"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-test"
)

var (
	ErrUnknownTestType      = errors.New("UNKNOWN_TEST_TYPE")
	ErrInvalidResponseValue = errors.New("INVALID_RESPONSE_VALUE")
)

type Handler struct {
	config    *Config
	framework *assessment.Framework
	logger    logger.Logger
}

func NewHandler(config *Config, framework *assessment.Framework, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
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

	if err := validatePayload([]byte(job.Variables)); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.failJob(client, job, errorCode(err), err.Error())
		return
	}

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

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	scores, err := h.framework.ScoreTest(input.TestType, input.Responses, input.ScenarioResponses)
	if err != nil {
		var unknown *assessment.UnknownTestTypeError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTestType, unknown.TestType)
		}
		var invalid *assessment.InvalidResponseValueError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponseValue, invalid)
		}
		return nil, err
	}

	metrics.AssessmentsScored.WithLabelValues(string(input.TestType)).Inc()

	h.logger.Info("assessment scored", map[string]interface{}{
		"testType":  input.TestType,
		"answered":  len(input.Responses),
		"scoreKeys": len(scores),
	})

	return &Output{
		TestType: input.TestType,
		Scores:   scores,
	}, nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTestType):
		return "UNKNOWN_TEST_TYPE"
	case errors.Is(err, ErrInvalidResponseValue):
		return "INVALID_RESPONSE_VALUE"
	default:
		return "SCORING_FAILED"
	}
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

// Execute exposes the scoring path for integration tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
