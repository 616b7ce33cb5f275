package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fintrack/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache stores generated reports per user and month. Implementations are
// best effort: a failed lookup is a miss and failed writes are only logged.
//
// Version must be read before the report is computed and handed back to Set.
// Set drops the report when Invalidate ran in between, so a report built from
// a ledger snapshot older than the last write is never stored.
type Cache interface {
	Get(ctx context.Context, userID int64, month string) (*Report, bool)
	Version(ctx context.Context, userID int64) (string, bool)
	Set(ctx context.Context, userID int64, month, version string, r *Report)
	Invalidate(ctx context.Context, userID int64)
}

// RedisCache keeps one hash per user with a field per month, plus a version
// counter bumped by every invalidation.
type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

// setIfVersion writes the month field only while the version key still holds
// the version the report was computed under. A missing counter reads as "0".
const setIfVersion = `if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
redis.call('PEXPIRE', KEYS[2], ARGV[4])
return 1`

func cacheKey(userID int64) string {
	return fmt.Sprintf("report:%d", userID)
}

func versionKey(userID int64) string {
	return fmt.Sprintf("report:ver:%d", userID)
}

func (c *RedisCache) Get(ctx context.Context, userID int64, month string) (*Report, bool) {
	data, err := c.redis.HGet(ctx, cacheKey(userID), month).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WithError(err).Warn("report cache lookup failed", "user_id", userID)
		}
		return nil, false
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		logger.WithError(err).Warn("bad cached report", "user_id", userID)
		return nil, false
	}
	return &r, true
}

// Version returns the current invalidation counter. ok is false when Redis
// cannot be read, in which case the report must not be cached.
func (c *RedisCache) Version(ctx context.Context, userID int64) (string, bool) {
	v, err := c.redis.Get(ctx, versionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	if err != nil {
		logger.WithError(err).Warn("report cache version lookup failed", "user_id", userID)
		return "", false
	}
	return v, true
}

func (c *RedisCache) Set(ctx context.Context, userID int64, month, version string, r *Report) {
	data, err := json.Marshal(r)
	if err != nil {
		logger.WithError(err).Warn("failed to marshal report", "user_id", userID)
		return
	}

	stored, err := c.redis.Eval(ctx, setIfVersion,
		[]string{versionKey(userID), cacheKey(userID)},
		version, month, string(data), strconv.FormatInt(c.ttl.Milliseconds(), 10),
	).Int()
	if err != nil {
		logger.WithError(err).Warn("report cache write failed", "user_id", userID)
		return
	}
	if stored == 0 {
		logger.Debug("report cache write skipped, ledger changed", "user_id", userID)
	}
}

// Invalidate bumps the version before dropping cached months, both in one
// MULTI, so a report computed before the bump can no longer be stored.
func (c *RedisCache) Invalidate(ctx context.Context, userID int64) {
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(userID))
		pipe.Del(ctx, cacheKey(userID))
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("report cache invalidation failed", "user_id", userID)
	}
}

func (c *RedisCache) Close() error {
	return c.redis.Close()
}

// NopCache is used when no Redis address is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, int64, string) (*Report, bool)  { return nil, false }
func (NopCache) Version(context.Context, int64) (string, bool)       { return "", false }
func (NopCache) Set(context.Context, int64, string, string, *Report) {}
func (NopCache) Invalidate(context.Context, int64)                   {}
