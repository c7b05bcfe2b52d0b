package generaterecommendations

import (
	"context"
	"time"

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
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	TaskType = "generate-recommendations"
)

type Handler struct {
	config   *Config
	profiles *store.Loader
	reporter *camunda.Reporter
	logger   logger.Logger
	now      func() time.Time
}

func NewHandler(config *Config, profiles *store.Loader, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		profiles: profiles,
		reporter: camunda.NewReporter(TaskType, scoped),
		logger:   scoped,
		now:      time.Now,
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
	if input.Requester != nil {
		userID = input.Requester.ID
	}
	if userID == "" {
		return nil, errs.NewInvalidInputError("userId or an inline requester is required")
	}
	if input.Pool != nil {
		if err := models.ValidatePool(input.Pool); err != nil {
			return nil, errs.NewProfileValidationFailedError(err.Error())
		}
	}

	var (
		requester models.Profile
		pool      = input.Pool
		connected = input.ExcludeIDs
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requester, err = h.profiles.ResolveProfile(gctx, input.Requester, userID)
		return err
	})
	if pool == nil {
		g.Go(func() error {
			loaded, err := h.profiles.ListCandidatePool(gctx, userID, h.config.PoolLimit)
			if err != nil {
				return store.PoolError(err)
			}
			pool = loaded
			return nil
		})
	}
	if connected == nil {
		g.Go(func() error {
			ids, err := h.profiles.AcceptedConnectionIDs(gctx, userID)
			if err != nil {
				return store.JobError(string(models.QueryTypeConnectionIDs), err)
			}
			connected = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := matching.Recommend(requester, pool, connected)
	output := &Output{
		Recommendations:  recs,
		View:             matching.NewConnectionsView(recs),
		RecommendationID: uuid.NewString(),
		GeneratedAt:      h.now().UTC(),
	}

	h.logger.Info("recommendations generated", map[string]interface{}{
		"userId":           userID,
		"poolSize":         len(pool),
		"excluded":         len(connected),
		"connectWith":      len(recs.ConnectWith),
		"mentors":          len(recs.Mentors),
		"recommendationId": output.RecommendationID,
	})

	return output, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
