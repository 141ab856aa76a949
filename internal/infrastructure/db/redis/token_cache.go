package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

const (
	cacheTTL    = 5 * time.Minute
	keyPrefix   = "session:"
	scanBatch   = 256
)

// TokenCache is a read-through cache for session token lookups, keyed
// per principal kind. Key format: session:<kind>:<token>. Entries expire
// after cacheTTL; the session table remains the authority, so a cache
// error always degrades to a table lookup rather than failing the
// request.
type TokenCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewTokenCache creates a TokenCache wrapping the given Redis client.
func NewTokenCache(client *redis.Client, log zerolog.Logger) *TokenCache {
	return &TokenCache{client: client, log: log}
}

func (c *TokenCache) Get(ctx context.Context, kind domain.PrincipalKind, token string) (int64, bool) {
	id, err := c.client.Get(ctx, c.key(kind, token)).Int64()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("token cache read failed")
		}
		return 0, false
	}
	return id, true
}

func (c *TokenCache) Put(ctx context.Context, kind domain.PrincipalKind, token string, principalID int64) {
	if err := c.client.Set(ctx, c.key(kind, token), principalID, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("token cache write failed")
	}
}

func (c *TokenCache) Delete(ctx context.Context, kind domain.PrincipalKind, token string) {
	if err := c.client.Del(ctx, c.key(kind, token)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("token cache delete failed")
	}
}

// Flush removes every cached session entry. Called when session rows are
// bulk-deleted so no cached grant can outlive its row.
func (c *TokenCache) Flush(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			c.log.Warn().Err(err).Msg("token cache flush scan failed")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn().Err(err).Msg("token cache flush delete failed")
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (c *TokenCache) key(kind domain.PrincipalKind, token string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, token)
}
