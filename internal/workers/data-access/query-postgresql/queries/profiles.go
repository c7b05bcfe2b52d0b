// internal/workers/data-access/query-postgresql/queries/profiles.go
package queries

import (
	"context"

	"alumni-connect-workers/internal/store"
)

func Profile(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error) {
	userID, err := params.String("userId")
	if err != nil {
		return nil, 0, err
	}
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return p, 1, nil
}

func CandidatePool(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error) {
	userID, err := params.String("userId")
	if err != nil {
		return nil, 0, err
	}
	pool, err := s.ListCandidatePool(ctx, userID, params.Int("limit"))
	if err != nil {
		return nil, 0, err
	}
	return pool, len(pool), nil
}

func ConnectionIDs(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error) {
	userID, err := params.String("userId")
	if err != nil {
		return nil, 0, err
	}
	ids, err := s.AcceptedConnectionIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return ids, len(ids), nil
}

func ActivityCounters(ctx context.Context, s *store.ProfileStore, params Params) (interface{}, int, error) {
	userID, err := params.String("userId")
	if err != nil {
		return nil, 0, err
	}
	c, err := s.ActivityCounters(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return c, 1, nil
}

func Population(ctx context.Context, s *store.ProfileStore, _ Params) (interface{}, int, error) {
	population, err := s.ListPopulation(ctx)
	if err != nil {
		return nil, 0, err
	}
	return population, len(population), nil
}
