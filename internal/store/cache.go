package store

import (
	"context"
	"errors"
	"time"

	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/metrics"
	"alumni-connect-workers/internal/models"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "profile:"

func profileKey(id string) string {
	return profileKeyPrefix + id
}

// ProfileCache keeps single profiles in redis. Lookups never fail: a miss, a
// decode error or an unreachable redis all report "not cached".
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewProfileCache(client *redis.Client, ttl time.Duration, log logger.Logger) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl, logger: log}
}

func (c *ProfileCache) Get(ctx context.Context, id string) (models.Profile, bool) {
	raw, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ProfileCacheRequests.WithLabelValues("miss").Inc()
		return models.Profile{}, false
	}
	if err != nil {
		metrics.ProfileCacheRequests.WithLabelValues("error").Inc()
		c.logger.Warn("profile cache read failed", map[string]interface{}{"userId": id, "error": err})
		return models.Profile{}, false
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		metrics.ProfileCacheRequests.WithLabelValues("corrupt").Inc()
		c.logger.Warn("profile cache entry undecodable", map[string]interface{}{"userId": id, "error": err})
		return models.Profile{}, false
	}
	metrics.ProfileCacheRequests.WithLabelValues("hit").Inc()
	return p, true
}

// Set stores p under its id. Failures are logged and otherwise ignored.
func (c *ProfileCache) Set(ctx context.Context, p models.Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		c.logger.Warn("profile cache encode failed", map[string]interface{}{"userId": p.ID, "error": err})
		return
	}
	if err := c.client.Set(ctx, profileKey(p.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("profile cache write failed", map[string]interface{}{"userId": p.ID, "error": err})
	}
}

func (c *ProfileCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, profileKey(id)).Err()
}
