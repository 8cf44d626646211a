package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/seasonal-storefront/server/internal/core/error"
	logx "github.com/seasonal-storefront/server/pkg/logger"
)

// RecentSearchStore keeps each user's latest search terms, newest first.
type RecentSearchStore interface {
	Add(ctx context.Context, userID, term string) error
	List(ctx context.Context, userID string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}

type RedisRecentSearches struct {
	rdb   redis.Cmdable
	limit int
	ttl   time.Duration
}

func NewRedisRecentSearches(rdb redis.Cmdable, limit int, ttl time.Duration) *RedisRecentSearches {
	if limit <= 0 {
		limit = 5
	}
	return &RedisRecentSearches{rdb: rdb, limit: limit, ttl: ttl}
}

func (r *RedisRecentSearches) key(userID string) string {
	return fmt.Sprintf("recent-searches:%s", userID)
}

// Add moves term to the front of the user's list. Blank terms are ignored.
func (r *RedisRecentSearches) Add(ctx context.Context, userID, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	key := r.key(userID)

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, term)
		pipe.LPush(ctx, key, term)
		pipe.LTrim(ctx, key, 0, int64(r.limit-1))
		// extend TTL on touch
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to record recent search")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisRecentSearches) List(ctx context.Context, userID string) ([]string, error) {
	key := r.key(userID)

	terms, err := r.rdb.LRange(ctx, key, 0, int64(r.limit-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load recent searches from redis")
		return nil, errx.WrapRedis(err)
	}
	return terms, nil
}

func (r *RedisRecentSearches) Clear(ctx context.Context, userID string) error {
	key := r.key(userID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete recent searches from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ RecentSearchStore = (*RedisRecentSearches)(nil)
