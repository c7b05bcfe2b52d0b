package recommendjobs

import (
	"context"

	"alumni-connect-workers/internal/common/camunda"
	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/validation"
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/goccy/go-json"
)

const (
	TaskType = "recommend-jobs"
)

type Handler struct {
	config   *Config
	profiles *store.Loader
	reporter *camunda.Reporter
	logger   logger.Logger
}

func NewHandler(config *Config, profiles *store.Loader, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		profiles: profiles,
		reporter: camunda.NewReporter(TaskType, scoped),
		logger:   scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	input, err := parseInput(job.Variables)
	if err != nil {
		h.reporter.Fail(client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		h.reporter.Fail(client, job, err)
		return
	}

	h.reporter.Complete(client, job, output)
}

func parseInput(variables string) (*Input, error) {
	if err := validation.ValidateTaskInput(TaskType, variables); err != nil {
		return nil, err
	}
	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errs.NewParseError(err)
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	requester, err := h.profiles.ResolveProfile(ctx, input.Requester, input.UserID)
	if err != nil {
		return nil, err
	}

	// Only students get job recommendations; skip the board query for
	// everyone else.
	if requester.Role != models.RoleStudent {
		h.logger.Debug("requester is not a student", map[string]interface{}{
			"userId": requester.ID,
			"role":   requester.Role,
		})
		return &Output{JobMatches: []matching.JobMatch{}}, nil
	}

	jobs := input.Jobs
	if jobs == nil {
		jobs, err = h.profiles.ListApprovedJobs(ctx)
		if err != nil {
			return nil, store.JobError(string(models.QueryTypeApprovedJobs), err)
		}
	} else {
		for _, j := range jobs {
			if err := j.Validate(); err != nil {
				return nil, errs.NewInvalidInputError("jobs: " + err.Error())
			}
		}
	}

	matches := matching.RecommendJobs(requester, jobs)

	h.logger.Info("jobs recommended", map[string]interface{}{
		"userId":    requester.ID,
		"jobsCount": len(jobs),
		"returned":  len(matches),
	})

	return &Output{JobMatches: matches}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
