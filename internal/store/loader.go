package store

import (
	"context"

	errs "alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/internal/models"
)

// Loader is the ProfileStore with a cache-first single-profile lookup.
type Loader struct {
	*ProfileStore
	cache *ProfileCache
}

// NewLoader accepts a nil cache, in which case every lookup hits postgres.
func NewLoader(profiles *ProfileStore, cache *ProfileCache) *Loader {
	return &Loader{ProfileStore: profiles, cache: cache}
}

func (l *Loader) LoadProfile(ctx context.Context, id string) (models.Profile, error) {
	if l.cache != nil {
		if p, ok := l.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	p, err := l.GetProfile(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	if l.cache != nil {
		l.cache.Set(ctx, p)
	}
	return p, nil
}

// ResolveProfile returns inline when the job carried one, otherwise loads id.
// Errors are already mapped to worker error codes.
func (l *Loader) ResolveProfile(ctx context.Context, inline *models.Profile, id string) (models.Profile, error) {
	if inline != nil {
		if err := inline.Validate(); err != nil {
			return models.Profile{}, errs.NewProfileValidationFailedError(err.Error())
		}
		return *inline, nil
	}
	if id == "" {
		return models.Profile{}, errs.NewInvalidInputError("userId or an inline profile is required")
	}

	p, err := l.LoadProfile(ctx, id)
	if err != nil {
		return models.Profile{}, JobError(string(models.QueryTypeProfile), err)
	}
	return p, nil
}
