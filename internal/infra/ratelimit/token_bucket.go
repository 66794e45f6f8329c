// Package ratelimit implements a Redis-backed token bucket shared by all
// API instances.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// The bucket state lives in one hash per key; refill and take happen in a
// single script call so concurrent requests cannot overdraw it.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_per_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_ms')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
	tokens = capacity
	last = now_ms
end

local elapsed = math.max(0, now_ms - last)
tokens = math.min(capacity, tokens + elapsed * refill_per_ms)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
	allowed = 1
	tokens = tokens - 1
elseif refill_per_ms > 0 then
	retry_ms = math.ceil((1 - tokens) / refill_per_ms)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'last_ms', now_ms)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, math.floor(tokens), retry_ms }
`)

type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type TokenBucket struct {
	rdb          redis.Scripter
	prefix       string
	capacity     int
	refillPerSec float64
	ttl          time.Duration
	now          func() time.Time
}

func NewLoginBucket(rdb redis.Scripter, cfg config.RateLimitConfig) *TokenBucket {
	return &TokenBucket{
		rdb:          rdb,
		prefix:       "rl:login",
		capacity:     cfg.LoginCapacity,
		refillPerSec: cfg.LoginRefillPerSec,
		ttl:          time.Duration(cfg.LoginKeyTTLSeconds) * time.Second,
		now:          time.Now,
	}
}

func (b *TokenBucket) Capacity() int {
	return b.capacity
}

func (b *TokenBucket) Allow(ctx context.Context, key string) (Decision, error) {
	ttl := int64(math.Ceil(b.ttl.Seconds()))
	if ttl < 1 {
		ttl = 1
	}
	vals, err := tokenBucketScript.Run(ctx, b.rdb, []string{b.prefix + ":" + key},
		b.now().UnixMilli(),
		b.capacity,
		strconv.FormatFloat(b.refillPerSec/1000, 'f', -1, 64),
		ttl,
	).Int64Slice()
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit script failed")
	}
	if len(vals) != 3 {
		return Decision{}, errs.New(fmt.Sprintf("unexpected rate limit result: %v", vals))
	}
	return Decision{
		Allowed:    vals[0] == 1,
		Remaining:  vals[1],
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}
