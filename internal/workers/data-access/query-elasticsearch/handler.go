package queryelasticsearch

import (
	"context"
	"errors"

	"alumni-connect-workers/internal/common/camunda"
	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/validation"
	"alumni-connect-workers/internal/workers/data-access/query-elasticsearch/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/goccy/go-json"
)

const (
	TaskType = "query-elasticsearch"
)

type Handler struct {
	config   *Config
	client   *elasticsearch.Client
	reporter *camunda.Reporter
	logger   logger.Logger
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		client:   client,
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
	if input == nil {
		return nil, errs.NewInvalidInputError("input cannot be nil")
	}

	result, err := queries.Execute(ctx, h.client, queries.ProfileQuery{
		Index:      h.config.Index,
		QueryType:  input.QueryType,
		Parameters: input.Parameters,
		From:       input.From,
		Size:       input.Size,
	})
	if err != nil {
		return nil, h.mapError(ctx, input.QueryType, err)
	}

	h.logger.Debug("search executed", map[string]interface{}{
		"queryType": input.QueryType,
		"totalHits": result.TotalHits,
		"returned":  len(result.Profiles),
		"took":      result.Took,
	})

	return &Output{
		Profiles:  result.Profiles,
		TotalHits: result.TotalHits,
		MaxScore:  result.MaxScore,
		Took:      result.Took,
	}, nil
}

func (h *Handler) mapError(ctx context.Context, queryType string, err error) error {
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		return errs.NewSearchTimeoutError(queryType)
	case errors.Is(err, queries.ErrUnknownQueryType):
		return errs.NewInvalidQueryTypeError(queryType)
	case errors.Is(err, queries.ErrMissingParam):
		return errs.NewInvalidInputError(err.Error())
	case errors.Is(err, queries.ErrMissingIndex), errors.Is(err, queries.ErrIndexNotFound):
		return errs.NewIndexNotFoundError(h.config.Index)
	case errors.Is(err, queries.ErrTransport):
		return errs.NewElasticsearchConnectionFailedError(err)
	default:
		return errs.NewSearchQueryFailedError(queryType, err)
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
