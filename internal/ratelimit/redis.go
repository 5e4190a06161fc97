package ratelimit

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisTokenBucket is a shared token bucket kept in Redis, refilled at
// ratePerS tokens per second up to burst. The whole take-or-deny step runs
// as one Lua script so concurrent instances never double-spend a token.
type RedisTokenBucket struct {
	rdb      *redis.Client
	ratePerS float64
	burst    int
	script   *redis.Script
}

func NewRedisTokenBucket(rdb *redis.Client, ratePerSecond float64, burst int) *RedisTokenBucket {
	lua := `
-- KEYS[1] = bucket key (hash with fields: tokens, ts)
-- ARGV[1] = ratePerS (float)
-- ARGV[2] = capacity (int)
-- Returns: allowed (1/0)
local key   = KEYS[1]
local rate  = tonumber(ARGV[1])
local cap   = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = (tonumber(t[1]) * 1000) + math.floor(tonumber(t[2]) / 1000)

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts     = tonumber(data[2])

if tokens == nil then
  tokens = cap
  ts = now_ms
end

local delta_ms = now_ms - ts
if delta_ms > 0 then
  local refill = (delta_ms / 1000.0) * rate
  tokens = math.min(cap, tokens + refill)
end

local allowed = 0
if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
end

redis.call('HMSET', key, 'tokens', tokens, 'ts', now_ms)

local ttl_ms = math.ceil((cap / rate) * 1000.0)
redis.call('PEXPIRE', key, ttl_ms)

return allowed
`
	return &RedisTokenBucket{
		rdb:      rdb,
		ratePerS: ratePerSecond,
		burst:    burst,
		script:   redis.NewScript(lua),
	}
}

func (tb *RedisTokenBucket) Allow(ctx context.Context, key string) (bool, error) {
	res, err := tb.script.Run(ctx, tb.rdb, []string{"rl:" + key},
		strconv.FormatFloat(tb.ratePerS, 'f', -1, 64),
		strconv.Itoa(tb.burst),
	).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
