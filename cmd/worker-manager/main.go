// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-workers/internal/assessment"
	"career-workers/internal/catalog"
	commonaws "career-workers/internal/common/aws"
	"career-workers/internal/common/camunda"
	"career-workers/internal/common/config"
	"career-workers/internal/common/database"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/engine"
	"career-workers/pkg/registry"

	// Assessment workers
	st "career-workers/internal/workers/assessment/score-test"
	sp "career-workers/internal/workers/assessment/summarize-profile"

	// Guidance workers
	rc "career-workers/internal/workers/guidance/recommend-careers"
	sr "career-workers/internal/workers/guidance/search-resources"
	srp "career-workers/internal/workers/guidance/send-report"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init AWS delivery clients ---
	sesClient, err := commonaws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
	if err != nil {
		zapLog.Fatal("SES client init failed", zap.Error(err))
	}
	snsClient, err := commonaws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
	if err != nil {
		zapLog.Fatal("SNS client init failed", zap.Error(err))
	}
	zapLog.Info("AWS delivery clients initialized")

	// --- Load reference catalog and build the matching engine ---
	cat := catalog.Default()
	if cfg.Engine.CatalogSource == "postgres" {
		cat, err = catalog.LoadFromPostgres(ctx, pg.DB)
		if err != nil {
			zapLog.Fatal("catalog load from postgres failed", zap.Error(err))
		}
	}
	matchEngine := engine.New(cat, engine.Options{
		StrictRelevanceSort: cfg.Engine.StrictRelevanceSort,
	})
	framework := assessment.NewFramework()

	// Sanity-check the assessment registry against the compiled-in scorers.
	if reg, err := registry.LoadRegistry(cfg.Assessment.RegistryPath); err != nil {
		zapLog.Warn("assessment registry not loaded", zap.Error(err))
	} else if err := reg.Validate(); err != nil {
		zapLog.Warn("assessment registry invalid", zap.Error(err))
	} else {
		zapLog.Info("assessment registry loaded",
			zap.String("version", reg.Version),
			zap.Int("tests", len(reg.Tests)),
		)
	}

	profileCacheTTL := time.Duration(cfg.Engine.ProfileCacheTTL) * time.Second

	// --- Register Workers ---
	var jobWorkers []*camunda.CamundaWorker

	// Assessment workers
	if config.IsWorkerEnabled(cfg, st.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, st.TaskType)
		handler := st.NewHandler(
			&st.Config{
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			framework, log,
		)
		jobWorkers = append(jobWorkers, startWorker(zeebeClient, st.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, sp.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, sp.TaskType)
		handler := sp.NewHandler(
			&sp.Config{
				CacheTTL: profileCacheTTL,
				Timeout:  time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			redis.Client, framework, log,
		)
		jobWorkers = append(jobWorkers, startWorker(zeebeClient, sp.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	// Guidance workers
	if config.IsWorkerEnabled(cfg, rc.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, rc.TaskType)
		handler := rc.NewHandler(
			&rc.Config{
				CacheTTL: profileCacheTTL,
				Timeout:  time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			pg.DB, redis.Client, matchEngine, log,
		)
		jobWorkers = append(jobWorkers, startWorker(zeebeClient, rc.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, sr.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, sr.TaskType)
		handler := sr.NewHandler(
			&sr.Config{
				Index:   cfg.Database.Elasticsearch.ResourceIndex,
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			esClient.Client, cat, log,
		)
		jobWorkers = append(jobWorkers, startWorker(zeebeClient, sr.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	if config.IsWorkerEnabled(cfg, srp.TaskType) {
		wcfg := config.GetWorkerConfig(cfg, srp.TaskType)
		handler := srp.NewHandler(
			&srp.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SMSEnabled:   cfg.Notifications.SMS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				AWSRegion:    cfg.Notifications.AWS.Region,
				Timeout:      time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			pg.DB, sesClient, snsClient, log,
		)
		jobWorkers = append(jobWorkers, startWorker(zeebeClient, srp.TaskType, wcfg, handler.Handle, obs, zapLog))
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range jobWorkers {
		if w != nil {
			w.Stop()
		}
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, obs *observability.Observability, log *zap.Logger) *camunda.CamundaWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return nil
	}

	return camunda.NewWorker(
		client,
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handler,
		obs,
		log,
	)
}
