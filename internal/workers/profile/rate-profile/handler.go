package rateprofile

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
	"golang.org/x/sync/errgroup"
)

const (
	TaskType = "rate-profile"
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
	userID := input.UserID
	if input.Profile != nil {
		userID = input.Profile.ID
	}
	if input.Counters != nil {
		if err := input.Counters.Validate(); err != nil {
			return nil, errs.NewInvalidInputError("counters: " + err.Error())
		}
	} else if userID == "" {
		return nil, errs.NewInvalidInputError("counters can only be aggregated for a known userId")
	}

	var (
		profile  models.Profile
		counters models.ActivityCounters
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = h.profiles.ResolveProfile(gctx, input.Profile, userID)
		return err
	})
	if input.Counters != nil {
		counters = *input.Counters
	} else {
		g.Go(func() error {
			c, err := h.profiles.ActivityCounters(gctx, userID)
			if err != nil {
				return store.JobError(string(models.QueryTypeActivityCounters), err)
			}
			counters = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rating := matching.Rate(profile, counters)
	metrics.ProfileRatings.Observe(float64(rating.OverallScore))

	h.logger.Info("profile rated", map[string]interface{}{
		"userId":       rating.UserID,
		"overallScore": rating.OverallScore,
	})

	return &Output{
		ProfileRating: rating,
		Insights:      matching.RatingInsights(rating),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
