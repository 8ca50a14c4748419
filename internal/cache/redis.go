// internal/cache/redis.go

// Package cache provides a redis-backed cache for assembled search
// pages. Cache failures degrade to a miss; they never fail the request.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/metrics"
)

const keyPrefix = "search:result:"

// SearchCache stores serialized search results keyed by the normalized
// filter fingerprint.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSearchCache(client *redis.Client, ttl time.Duration, log logger.Logger) *SearchCache {
	return &SearchCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "search-cache"}),
	}
}

// Get unmarshals a cached result into dest. Returns false on miss or on
// any cache error.
func (c *SearchCache) Get(ctx context.Context, fingerprint string, dest interface{}) bool {
	data, err := c.client.Get(ctx, keyPrefix+fingerprint).Bytes()
	if err == redis.Nil {
		metrics.CacheHits.WithLabelValues("miss").Inc()
		return false
	}
	if err != nil {
		metrics.CacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("cache get failed", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		metrics.CacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("cache entry corrupt, ignoring", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	metrics.CacheHits.WithLabelValues("hit").Inc()
	return true
}

// Set stores value under the fingerprint with the configured TTL.
// Failures are logged and swallowed.
func (c *SearchCache) Set(ctx context.Context, fingerprint string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := c.client.Set(ctx, keyPrefix+fingerprint, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
