package calculatematchscore

import (
	"context"

	"alumni-connect-workers/internal/common/camunda"
	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/metrics"
	"alumni-connect-workers/internal/common/validation"
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	TaskType = "calculate-match-score"
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

	candidates, err := h.candidatePool(ctx, requester.ID, input.Candidates)
	if err != nil {
		return nil, err
	}

	scores := matching.Match(requester, candidates)

	observed := make([]float64, len(scores))
	for i, s := range scores {
		observed[i] = s.Score
	}
	metrics.ObserveMatches(observed)

	scored := len(scores)
	if input.Limit > 0 && len(scores) > input.Limit {
		scores = scores[:input.Limit]
	}

	matches := make([]ScoredMatch, len(scores))
	for i, s := range scores {
		matches[i] = ScoredMatch{MatchScore: s, Quality: matching.MatchQuality(s.Score)}
	}

	output := &Output{
		Matches:        matches,
		CandidateCount: scored,
		ComputationID:  uuid.NewString(),
	}

	h.logger.Info("match scores calculated", map[string]interface{}{
		"userId":         requester.ID,
		"candidateCount": output.CandidateCount,
		"returned":       len(matches),
		"computationId":  output.ComputationID,
	})

	return output, nil
}

func (h *Handler) candidatePool(ctx context.Context, requesterID string, inline []models.Profile) ([]models.Profile, error) {
	if inline != nil {
		if err := models.ValidatePool(inline); err != nil {
			return nil, errs.NewProfileValidationFailedError(err.Error())
		}
		return inline, nil
	}

	pool, err := h.profiles.ListCandidatePool(ctx, requesterID, h.config.PoolLimit)
	if err != nil {
		return nil, store.PoolError(err)
	}
	return pool, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
