package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PostingCache implements ports.PostingCache using Redis. It fronts the
// authoritative database idempotency check with the JSON of already-posted
// transactions keyed by the posting key.
type PostingCache struct {
	client *goredis.Client
	prefix string
}

// NewPostingCache creates a new Redis-backed posting cache.
func NewPostingCache(client *goredis.Client) *PostingCache {
	return &PostingCache{
		client: client,
		prefix: "posting:",
	}
}

// Get retrieves a cached transaction by posting key.
// Returns nil, nil if the key does not exist.
func (c *PostingCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis posting cache get: %w", err)
	}
	return val, nil
}

// Set stores a posted transaction in the cache with TTL.
func (c *PostingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis posting cache set: %w", err)
	}
	return nil
}
