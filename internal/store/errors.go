package store

import (
	"context"
	"errors"

	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/common/resilience"
	"alumni-connect-workers/internal/models"
)

// JobError maps a store failure onto the worker error codes.
func JobError(queryType string, err error) error {
	var (
		notFound *NotFoundError
		stdErr   *errs.StandardError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &stdErr):
		return stdErr
	case errors.As(err, &notFound):
		return errs.NewProfileNotFoundError(notFound.ID)
	case errors.Is(err, context.DeadlineExceeded):
		return errs.NewQueryTimeoutError(queryType)
	case errors.Is(err, resilience.ErrOpen), errors.Is(err, resilience.ErrBusy):
		return errs.NewDatabaseConnectionFailedError(err)
	default:
		return errs.NewQueryExecutionFailedError(queryType, err)
	}
}

// PoolError maps a failure to assemble a candidate pool.
func PoolError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewQueryTimeoutError(string(models.QueryTypeCandidatePool))
	}
	return errs.NewCandidatePoolFailedError(err)
}
