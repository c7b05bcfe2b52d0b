package camunda

import (
	"context"
	"time"

	"alumni-connect-workers/internal/common/config"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/metrics"
	"alumni-connect-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler is implemented by every worker handler.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

const (
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusThrown    = "error_thrown"
	statusUnknown   = "unreported"
)

// statusClient remembers which terminal command a handler issued.
type statusClient struct {
	worker.JobClient
	status string
}

func (c *statusClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	c.status = statusCompleted
	return c.JobClient.NewCompleteJobCommand()
}

func (c *statusClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	c.status = statusFailed
	return c.JobClient.NewFailJobCommand()
}

func (c *statusClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	c.status = statusThrown
	return c.JobClient.NewThrowErrorCommand()
}

// Instrument wraps h with job duration, in-flight and outcome metrics.
func Instrument(taskType string, h JobHandler, obs *observability.Observability) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		active := metrics.WorkerJobsActive.WithLabelValues(taskType)
		active.Inc()
		defer active.Dec()

		tracked := &statusClient{JobClient: client, status: statusUnknown}
		start := time.Now()
		h.Handle(tracked, job)
		elapsed := time.Since(start)

		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		if obs != nil {
			obs.RecordJob(context.Background(), taskType, tracked.status, elapsed)
		}
	}
}

// StartWorker opens a job worker for taskType using the worker's config.
func StartWorker(
	client zbc.Client,
	taskType string,
	cfg config.WorkerConfig,
	h JobHandler,
	obs *observability.Observability,
	log logger.Logger,
) worker.JobWorker {
	jw := client.NewJobWorker().
		JobType(taskType).
		Handler(Instrument(taskType, h, obs)).
		MaxJobsActive(cfg.MaxJobsActive).
		Timeout(config.GetDuration(cfg.Timeout)).
		Name(taskType).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": cfg.MaxJobsActive,
		"timeoutMs":     cfg.Timeout,
	})
	return jw
}
