package camunda

import (
	"context"

	"alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// Reporter sends a job's outcome back to the broker and counts it.
type Reporter struct {
	taskType string
	logger   logger.Logger
	errs     *errors.ErrorHandler
}

func NewReporter(taskType string, log logger.Logger) *Reporter {
	return &Reporter{
		taskType: taskType,
		logger:   log,
		errs:     errors.NewErrorHandler(log),
	}
}

// Complete finishes the job with output as its variables.
func (r *Reporter) Complete(client worker.JobClient, job entities.Job, output interface{}) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		r.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		r.Fail(client, job, errors.NewInternalError(err))
		return
	}

	if _, err := cmd.Send(context.Background()); err != nil {
		r.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
}

// Fail reports err as a retryable failure or a thrown BPMN error.
func (r *Reporter) Fail(client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.AsStandardError(err)
	metrics.WorkerJobsFailed.WithLabelValues(r.taskType, string(stdErr.Code)).Inc()
	r.errs.HandleJobError(context.Background(), client, job, stdErr)
}
