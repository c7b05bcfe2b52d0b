package explainmatch

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
	"golang.org/x/sync/errgroup"
)

const (
	TaskType = "explain-match"
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
	if input.Candidate == nil && input.CandidateID == "" {
		return nil, errs.NewInvalidInputError("candidateId or an inline candidate is required")
	}

	g, gctx := errgroup.WithContext(ctx)

	var requester, candidate models.Profile
	g.Go(func() error {
		var err error
		requester, err = h.profiles.ResolveProfile(gctx, input.Requester, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		candidate, err = h.profiles.ResolveProfile(gctx, input.Candidate, input.CandidateID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if requester.ID == candidate.ID {
		return nil, errs.NewInvalidInputError("a profile cannot be matched against itself").
			WithMetadata("userId", requester.ID)
	}

	output := &Output{
		Explanation: matching.Explain(requester, candidate),
		RequesterID: requester.ID,
	}

	h.logger.Info("match explained", map[string]interface{}{
		"userId":      requester.ID,
		"candidateId": candidate.ID,
		"score":       output.Score,
		"quality":     output.Quality,
	})

	return output, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
