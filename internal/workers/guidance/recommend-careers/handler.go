// internal/workers/guidance/recommend-careers/handler.go
package recommendcareers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine"
	"career-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "recommend-careers"

	profileCachePrefix        = "user:profile:"
	recommendationCachePrefix = "recommendation:"
)

type Handler struct {
	config *Config
	db     *sql.DB
	redis  *redis.Client
	engine *engine.Engine
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, redisClient *redis.Client, eng *engine.Engine, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		redis:  redisClient,
		engine: eng,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "RECOMMENDATION_FAILED").Inc()
		h.failJob(client, job, "RECOMMENDATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile := input.Profile
	if profile == nil && input.UserID != "" {
		fetched, err := h.getUserProfile(ctx, input.UserID)
		if err != nil {
			h.logger.Warn("failed to fetch user profile, recommending from empty profile", map[string]interface{}{
				"userId": input.UserID,
				"error":  err,
			})
			metrics.ProfileCacheHits.WithLabelValues("error").Inc()
		} else {
			profile = fetched
		}
	}

	recommendation := h.engine.Recommend(profile)
	metrics.RecommendationsGenerated.Inc()
	h.cacheRecommendation(ctx, input.UserID, recommendation)

	h.logger.Info("recommendation generated", map[string]interface{}{
		"userId":      input.UserID,
		"careerPaths": len(recommendation.CareerPaths),
		"resources":   len(recommendation.LearningResources),
		"skillGap":    len(recommendation.SkillsToDevelop),
	})

	return &Output{
		UserID:         input.UserID,
		Recommendation: recommendation,
		Disclaimer:     h.engine.Disclaimer(),
	}, nil
}

// cacheRecommendation keeps the latest result around for report delivery.
// Cache failures never fail the job.
func (h *Handler) cacheRecommendation(ctx context.Context, userID string, rec *models.Recommendation) {
	if userID == "" || h.redis == nil {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, recommendationCachePrefix+userID, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("failed to cache recommendation", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
	}
}

func (h *Handler) getUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	cacheKey := profileCachePrefix + userID
	if h.redis != nil {
		if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.UserProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				metrics.ProfileCacheHits.WithLabelValues("hit").Inc()
				return &profile, nil
			}
		}
	}
	metrics.ProfileCacheHits.WithLabelValues("miss").Inc()

	row := h.db.QueryRowContext(ctx, `
		SELECT interests, skills, goals, experience_years
		FROM user_profiles WHERE user_id = $1`, userID)

	var profile models.UserProfile
	var interests, skills, goals []byte
	err := row.Scan(&interests, &skills, &goals, &profile.ExperienceYears)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(interests, &profile.Interests); err != nil {
		profile.Interests = []string{}
	}
	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		profile.Skills = []string{}
	}
	if err := json.Unmarshal(goals, &profile.Goals); err != nil {
		profile.Goals = []string{}
	}

	if h.redis != nil {
		data, _ := json.Marshal(profile)
		h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
	}

	return &profile, nil
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

// Execute exposes the recommendation path for integration tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
