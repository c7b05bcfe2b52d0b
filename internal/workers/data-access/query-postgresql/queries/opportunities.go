// internal/workers/data-access/query-postgresql/queries/opportunities.go
package queries

import (
	"context"
	"time"

	"alumni-connect-workers/internal/store"
)

func ApprovedJobs(ctx context.Context, s *store.ProfileStore, _ Params) (interface{}, int, error) {
	jobs, err := s.ListApprovedJobs(ctx)
	if err != nil {
		return nil, 0, err
	}
	return jobs, len(jobs), nil
}

// UpcomingEvents accepts an optional "after" timestamp; it defaults to now.
func UpcomingEvents(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error) {
	after, err := params.Time("after", time.Now())
	if err != nil {
		return nil, 0, err
	}
	events, err := s.ListUpcomingEvents(ctx, after)
	if err != nil {
		return nil, 0, err
	}
	return events, len(events), nil
}
