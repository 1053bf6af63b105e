// Package limiter implements a token-bucket rate limiter backed by Redis.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter takes one token from the bucket identified by key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// tokenBucket refills in whole intervals and keeps the bucket state in a
// hash with fields tokens and last_refill_ms. Returns
// {allowed, tokens, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RedisLimiter is a Limiter shared by every server instance pointing at the
// same Redis.
type RedisLimiter struct {
	client   redis.Scripter
	capacity int
	interval time.Duration
	ttl      time.Duration
	prefix   string
	now      func() time.Time
}

func NewRedisLimiter(client redis.Scripter, cfg config.RateLimit) *RedisLimiter {
	ttl := cfg.TTL
	if ttl < time.Second {
		ttl = time.Second
	}
	return &RedisLimiter{
		client:   client,
		capacity: cfg.Capacity,
		interval: cfg.RefillInterval,
		ttl:      ttl,
		prefix:   cfg.Prefix,
		now:      time.Now,
	}
}

// Allow takes a token from the bucket stored under prefix:key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.prefix != "" {
		key = l.prefix + ":" + key
	}

	res, err := tokenBucket.Run(ctx, l.client, []string{key},
		l.now().UnixMilli(),
		l.capacity,
		1,
		l.interval.Milliseconds(),
		int64(l.ttl/time.Second),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 3 {
		return Decision{}, fmt.Errorf("rate limit script: unexpected result %v", res)
	}

	return Decision{
		Allowed:    res[0] == 1,
		Limit:      l.capacity,
		Remaining:  res[1],
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
