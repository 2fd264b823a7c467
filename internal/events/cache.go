package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// PublicCache caches public event metadata in Redis. Share links are the hot
// unauthenticated path, so a short TTL keeps guest page loads off the store.
// The cache is best-effort: a nil client or a Redis failure falls through to
// the loader, and the store remains the source of truth.
type PublicCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewPublicCache instantiates the cache helper.
func NewPublicCache(client *redis.Client, ttl time.Duration) *PublicCache {
	return &PublicCache{client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return "event:public:" + id
}

// Fetch loads the cached public view or populates it using the loader.
// Concurrent misses for the same event collapse to a single loader call.
func (c *PublicCache) Fetch(ctx context.Context, id string, loader func(context.Context) (*PublicEvent, error)) (*PublicEvent, error) {
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var cached PublicEvent
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return loader(ctx)
	}

	result := c.group.DoChan(cacheKey(id), func() (any, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(value); err == nil {
			_ = c.client.Set(ctx, cacheKey(id), data, c.ttl).Err()
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*PublicEvent), nil
	}
}

// Invalidate drops the cached view after a toggle so guests see the new
// upload status immediately.
func (c *PublicCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, cacheKey(id)).Err()
}
