// internal/workers/data-access/query-postgresql/handler.go
package querypostgresql

import (
	"context"
	"errors"

	"alumni-connect-workers/internal/common/camunda"
	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/validation"
	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"
	"alumni-connect-workers/internal/workers/data-access/query-postgresql/queries"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/goccy/go-json"
)

const (
	TaskType = "query-postgresql"
)

type Handler struct {
	config   *Config
	profiles *store.ProfileStore
	reporter *camunda.Reporter
	logger   logger.Logger
}

func NewHandler(config *Config, profiles *store.ProfileStore, log logger.Logger) *Handler {
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
	if input == nil {
		return nil, errs.NewInvalidInputError("input cannot be nil")
	}

	queryType := models.QueryType(input.QueryType)
	if _, exists := queries.Registry[queryType]; !exists {
		return nil, errs.NewInvalidQueryTypeError(input.QueryType)
	}

	data, rowCount, execTime, err := queries.Execute(ctx, h.profiles, queryType, queries.Params(input.Parameters))
	if err != nil {
		if errors.Is(err, queries.ErrMissingParam) {
			return nil, errs.NewInvalidInputError(err.Error())
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errs.NewQueryTimeoutError(input.QueryType)
		}
		return nil, store.JobError(input.QueryType, err)
	}

	h.logger.Debug("query executed", map[string]interface{}{
		"queryType":     input.QueryType,
		"rowCount":      rowCount,
		"executionTime": execTime,
	})

	return &Output{
		Data:               data,
		RowCount:           rowCount,
		QueryExecutionTime: execTime,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
