// internal/workers/data-access/query-postgresql/queries/registry.go
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumni-connect-workers/internal/models"
	"alumni-connect-workers/internal/store"
)

var (
	ErrMissingParam     = errors.New("missing required parameter")
	ErrUnknownQueryType = errors.New("unknown query type")
)

// Params are the job's free-form parameters. JSON numbers arrive as
// float64.
type Params map[string]interface{}

// QueryFunc returns: data, rowCount, error
type QueryFunc func(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error)

var Registry = map[models.QueryType]QueryFunc{
	models.QueryTypeProfile:          Profile,
	models.QueryTypeCandidatePool:    CandidatePool,
	models.QueryTypeConnectionIDs:    ConnectionIDs,
	models.QueryTypeActivityCounters: ActivityCounters,
	models.QueryTypePopulation:       Population,
	models.QueryTypeApprovedJobs:     ApprovedJobs,
	models.QueryTypeUpcomingEvents:   UpcomingEvents,
}

// Execute runs queryType and reports its wall time in milliseconds.
func Execute(ctx context.Context, s *store.ProfileStore, queryType models.QueryType, params Params) (interface{}, int, int64, error) {
	fn, exists := Registry[queryType]
	if !exists {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrUnknownQueryType, queryType)
	}

	start := time.Now()
	data, rowCount, err := fn(ctx, s, params)
	return data, rowCount, time.Since(start).Milliseconds(), err
}

func (p Params) String(key string) (string, error) {
	v, ok := p[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	return v, nil
}

// Int returns 0 when key is absent.
func (p Params) Int(key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Time parses an RFC 3339 value, falling back to def when key is absent.
func (p Params) Time(key string, def time.Time) (time.Time, error) {
	raw, ok := p[key].(string)
	if !ok || raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not RFC 3339", ErrMissingParam, key)
	}
	return t, nil
}
