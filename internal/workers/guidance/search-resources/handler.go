// internal/workers/guidance/search-resources/handler.go
package searchresources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"

	"career-workers/internal/catalog"
	commonerrors "career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/models"
	"career-workers/internal/workers/guidance/search-resources/queries"
)

const (
	TaskType = "search-resources"

	sourceElasticsearch = "elasticsearch"
	sourceCatalog       = "catalog"
)

var (
	ErrElasticsearchConnectionFailed = errors.New("ELASTICSEARCH_CONNECTION_FAILED")
	ErrResourceSearchFailed          = errors.New("RESOURCE_SEARCH_FAILED")
	ErrSearchTimeout                 = errors.New("SEARCH_TIMEOUT")
	ErrIndexNotFound                 = errors.New("INDEX_NOT_FOUND")
)

type Handler struct {
	config   *Config
	client   *elasticsearch.Client
	catalog  *catalog.Catalog
	logger   logger.Logger
	errorOut *commonerrors.ErrorHandler
}

// NewHandler wires the search worker. The catalog is the degraded-mode
// source when Elasticsearch is unavailable; pass nil to disable fallback.
func NewHandler(config *Config, client *elasticsearch.Client, cat *catalog.Catalog, log logger.Logger) *Handler {
	scopedLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		client:   client,
		catalog:  cat,
		logger:   scopedLog,
		errorOut: commonerrors.NewErrorHandler(scopedLog),
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
		// Retryable index failures go through FailJob with a retry budget,
		// non-retryable ones surface as catchable BPMN errors.
		stdErr := h.toStandardError(err)
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errorOut.HandleJobError(context.Background(), client, job, stdErr)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	rq := queries.ResourceQuery{
		Index:    h.config.Index,
		Keywords: input.Query,
		Tags:     normalizeTags(input.Tags),
		Level:    input.Level,
		Type:     input.Type,
	}
	rq.Pagination.From = input.Pagination.From
	rq.Pagination.Size = input.Pagination.Size

	result, err := queries.Execute(ctx, h.client, rq)
	if err != nil {
		if errors.Is(err, queries.ErrMissingIndex) {
			return nil, ErrIndexNotFound
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrSearchTimeout
		}
		if h.catalog != nil {
			h.logger.Warn("search failed, serving catalog resources", map[string]interface{}{
				"index": h.config.Index,
				"error": err,
			})
			return h.catalogFallback(input), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrResourceSearchFailed, err)
	}

	return &Output{
		Resources: result.Resources,
		TotalHits: result.TotalHits,
		MaxScore:  result.MaxScore,
		Took:      result.Took,
		Source:    sourceElasticsearch,
	}, nil
}

// catalogFallback filters the embedded catalog with the same tag and level
// semantics the index query would have applied.
func (h *Handler) catalogFallback(input *Input) *Output {
	tags := normalizeTags(input.Tags)
	size := input.Pagination.Size
	if size < 1 {
		size = 20
	}

	matched := make([]models.Resource, 0, size)
	for _, res := range h.catalog.LearningResources() {
		if input.Level != "" && res.Level != input.Level {
			continue
		}
		if input.Type != "" && res.Type != input.Type {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(res.Tags, tags) {
			continue
		}
		matched = append(matched, res)
		if len(matched) == size {
			break
		}
	}

	return &Output{
		Resources: matched,
		TotalHits: int64(len(matched)),
		Source:    sourceCatalog,
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, strings.ReplaceAll(tag, " ", "-"))
		}
	}
	return out
}

func hasAnyTag(resourceTags, wanted []string) bool {
	for _, rt := range resourceTags {
		for _, w := range wanted {
			if rt == w {
				return true
			}
		}
	}
	return false
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

// toStandardError maps the search sentinels onto the shared error codes so
// the retry policy stays in one place.
func (h *Handler) toStandardError(err error) *commonerrors.StandardError {
	switch {
	case errors.Is(err, ErrIndexNotFound):
		return commonerrors.NewIndexNotFoundError(h.config.Index)
	case errors.Is(err, ErrSearchTimeout):
		return commonerrors.NewSearchTimeoutError(h.config.Index)
	case errors.Is(err, ErrElasticsearchConnectionFailed):
		return commonerrors.NewElasticsearchConnectionFailedError(err)
	default:
		return commonerrors.NewResourceSearchFailedError(err)
	}
}

// Execute exposes the search path for integration tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
