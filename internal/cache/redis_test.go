// internal/cache/redis_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
)

type cachedPage struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

func newTestCache(t *testing.T) (*SearchCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSearchCache(client, time.Minute, logger.NewTestLogger(t)), mr
}

func TestSearchCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	stored := cachedPage{Items: []string{"a", "b"}, Total: 2}
	c.Set(ctx, "fp-1", stored)

	var loaded cachedPage
	require.True(t, c.Get(ctx, "fp-1", &loaded))
	assert.Equal(t, stored, loaded)
}

func TestSearchCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var loaded cachedPage
	assert.False(t, c.Get(context.Background(), "unknown", &loaded))
}

func TestSearchCache_TTLApplied(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "fp-ttl", cachedPage{Total: 1})

	ttl := mr.TTL(keyPrefix + "fp-ttl")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)

	var loaded cachedPage
	assert.False(t, c.Get(ctx, "fp-ttl", &loaded))
}

func TestSearchCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set(keyPrefix+"fp-bad", "{not json"))

	var loaded cachedPage
	assert.False(t, c.Get(context.Background(), "fp-bad", &loaded))
}

func TestSearchCache_ServerDownDegradesToMiss(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	var loaded cachedPage
	assert.False(t, c.Get(context.Background(), "fp-1", &loaded))
	assert.NotPanics(t, func() {
		c.Set(context.Background(), "fp-1", cachedPage{})
	})
}
