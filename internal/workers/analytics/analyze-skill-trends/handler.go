package analyzeskilltrends

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
)

const (
	TaskType = "analyze-skill-trends"
)

// Handler reads the population straight from the ProfileStore; trend
// reports never go through the profile cache.
type Handler struct {
	config   *Config
	profiles *store.ProfileStore
	reporter *camunda.Reporter
	logger   logger.Logger
	now      func() time.Time
}

func NewHandler(config *Config, profiles *store.ProfileStore, log logger.Logger) *Handler {
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
	population := input.Population
	if population == nil {
		loaded, err := h.profiles.ListPopulation(ctx)
		if err != nil {
			return nil, store.JobError(string(models.QueryTypePopulation), err)
		}
		population = loaded
	}

	report := matching.AnalyzeTrends(population)

	h.logger.Info("skill trends analyzed", map[string]interface{}{
		"populationSize": report.PopulationSize,
		"topSkills":      len(report.TopSkills),
		"emergingSkills": len(report.EmergingSkills),
		"branch":         input.Branch,
	})

	return &Output{
		SkillTrendReport: report,
		View:             matching.NewSkillsView(report, input.Branch),
		GeneratedAt:      h.now().UTC(),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
