// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"

	"alumni-connect-workers/internal/common/camunda"
	"alumni-connect-workers/internal/common/config"
	"alumni-connect-workers/internal/common/database"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/observability"
	"alumni-connect-workers/internal/common/resilience"
	"alumni-connect-workers/internal/store"

	// Data Access Workers (2)
	qe "alumni-connect-workers/internal/workers/data-access/query-elasticsearch"
	qp "alumni-connect-workers/internal/workers/data-access/query-postgresql"

	// Matching Workers (3)
	cms "alumni-connect-workers/internal/workers/matching/calculate-match-score"
	em "alumni-connect-workers/internal/workers/matching/explain-match"
	gr "alumni-connect-workers/internal/workers/matching/generate-recommendations"

	// Profile & Analytics Workers (2)
	ast "alumni-connect-workers/internal/workers/analytics/analyze-skill-trends"
	rp "alumni-connect-workers/internal/workers/profile/rate-profile"

	// Opportunity Workers (2)
	re "alumni-connect-workers/internal/workers/opportunities/recommend-events"
	rj "alumni-connect-workers/internal/workers/opportunities/recommend-jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", "stdout")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = obs.Shutdown(shutdownCtx)
	}()

	// --- Zeebe ---
	zeebe, err := camunda.NewClientWithConfig(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	})
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()
	zapLog.Info("Zeebe client connected successfully")

	// --- PostgreSQL ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()
	if err := database.WaitFor(ctx, "postgres", pg, 15, 2*time.Second, log); err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}

	// --- Redis ---
	rdb := database.NewRedis(cfg.Database.Redis)
	defer rdb.Close()
	if err := database.WaitFor(ctx, "redis", rdb, 10, 2*time.Second, log); err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}

	readiness := map[string]database.Pinger{
		"postgres": pg,
		"redis":    rdb,
		"zeebe":    pingFunc(zeebe.HealthCheck),
	}

	// --- Elasticsearch (optional) ---
	var es *database.ElasticsearchClient
	if len(cfg.Database.Elasticsearch.Addresses) > 0 {
		es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			zapLog.Fatal("elasticsearch init failed", zap.Error(err))
		}
		if err := database.WaitFor(ctx, "elasticsearch", es, 15, 2*time.Second, log); err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		readiness["elasticsearch"] = es
	}

	// --- Profile store ---
	breakerCfg := resilience.DefaultBreakerConfig("postgres")
	breakerCfg.Timeout = config.GetDuration(cfg.Matching.BreakerTimeout)
	breakerCfg.Benign = func(err error) bool { return errors.Is(err, store.ErrProfileNotFound) }
	profiles := store.NewProfileStore(pg.DB, resilience.NewBreaker(breakerCfg, log), log)
	loader := store.NewLoader(profiles, store.NewProfileCache(rdb.Client, config.GetDuration(cfg.Matching.ProfileCacheTTL), log))

	// Worker timeouts come from config when the worker is listed there,
	// otherwise each package's defaults stand.
	timeout := func(taskType string, fallback time.Duration) time.Duration {
		if w, ok := cfg.Workers[taskType]; ok && w.Timeout > 0 {
			return config.GetDuration(w.Timeout)
		}
		return fallback
	}

	registrations := []registration{
		{cms.TaskType, func() camunda.JobHandler {
			c := cms.LoadConfig()
			c.Timeout = timeout(cms.TaskType, c.Timeout)
			c.PoolLimit = cfg.Matching.PoolLimit
			return cms.NewHandler(c, loader, log)
		}},
		{em.TaskType, func() camunda.JobHandler {
			c := em.LoadConfig()
			c.Timeout = timeout(em.TaskType, c.Timeout)
			return em.NewHandler(c, loader, log)
		}},
		{gr.TaskType, func() camunda.JobHandler {
			c := gr.LoadConfig()
			c.Timeout = timeout(gr.TaskType, c.Timeout)
			c.PoolLimit = cfg.Matching.PoolLimit
			return gr.NewHandler(c, loader, log)
		}},
		{rp.TaskType, func() camunda.JobHandler {
			c := rp.LoadConfig()
			c.Timeout = timeout(rp.TaskType, c.Timeout)
			return rp.NewHandler(c, loader, log)
		}},
		{ast.TaskType, func() camunda.JobHandler {
			c := ast.LoadConfig()
			c.Timeout = timeout(ast.TaskType, c.Timeout)
			return ast.NewHandler(c, profiles, log)
		}},
		{rj.TaskType, func() camunda.JobHandler {
			c := rj.LoadConfig()
			c.Timeout = timeout(rj.TaskType, c.Timeout)
			return rj.NewHandler(c, loader, log)
		}},
		{re.TaskType, func() camunda.JobHandler {
			c := re.LoadConfig()
			c.Timeout = timeout(re.TaskType, c.Timeout)
			return re.NewHandler(c, loader, log)
		}},
		{qp.TaskType, func() camunda.JobHandler {
			c := qp.LoadConfig()
			c.Timeout = timeout(qp.TaskType, c.Timeout)
			return qp.NewHandler(c, profiles, log)
		}},
	}
	if es != nil {
		registrations = append(registrations, registration{qe.TaskType, func() camunda.JobHandler {
			c := qe.LoadConfig()
			c.Timeout = timeout(qe.TaskType, c.Timeout)
			c.Index = cfg.Matching.ProfileIndex
			return qe.NewHandler(c, es.Client, log)
		}})
	}

	// --- Register workers ---
	workers := startWorkers(zeebe.GetClient(), cfg, obs, log, registrations)
	zapLog.Info("workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(readiness, time.Now),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLog.Info("Shutting down worker manager...")

	for _, w := range workers {
		w.Close()
		w.AwaitClose()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Worker manager stopped")
}

// registration defers handler construction until the worker is known to be
// enabled.
type registration struct {
	taskType string
	build    func() camunda.JobHandler
}

func startWorkers(
	client zbc.Client,
	cfg *config.Config,
	obs *observability.Observability,
	log logger.Logger,
	registrations []registration,
) []worker.JobWorker {
	var workers []worker.JobWorker
	for _, r := range registrations {
		if !config.IsWorkerEnabled(cfg, r.taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": r.taskType})
			continue
		}
		workers = append(workers, camunda.StartWorker(
			client, r.taskType, config.GetWorkerConfig(cfg, r.taskType), r.build(), obs, log,
		))
	}
	return workers
}
