package lock

import "github.com/redis/go-redis/v9"

// The three lock operations are each a single round trip against Redis.
// Waiting-queue members encode their expiry so pruning happens inside the
// same script that evaluates queue fairness: member = "<owner>|<deadline_ms>".

// acquireScript grants the lock iff it is free and the caller is the
// highest-priority non-expired waiter (or the queue is empty).
//
// KEYS[1] lock key, KEYS[2] metadata hash, KEYS[3] waiter zset
// ARGV[1] owner, ARGV[2] lease ttl ms, ARGV[3] now ms, ARGV[4] caller member
//
// Returns 0 on grant, -1 if held by someone else, -2 if it is not the
// caller's turn.
var acquireScript = redis.NewScript(`
local lock = KEYS[1]
local meta = KEYS[2]
local queue = KEYS[3]
local owner = ARGV[1]
local ttl = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local member = ARGV[4]

-- prune expired waiters
local waiters = redis.call('ZRANGE', queue, 0, -1)
for _, w in ipairs(waiters) do
  local deadline = tonumber(string.match(w, '|(%d+)$'))
  if deadline and deadline < now then
    redis.call('ZREM', queue, w)
  end
end

if redis.call('EXISTS', lock) == 1 then
  return -1
end

local head = redis.call('ZRANGE', queue, 0, 0)
if #head == 1 and head[1] ~= member then
  return -2
end

redis.call('SET', lock, owner, 'PX', ttl)
redis.call('HSET', meta, 'owner', owner, 'acquired_at', now, 'expires_at', now + ttl, 'renewal_count', 0)
redis.call('PEXPIRE', meta, ttl)
redis.call('ZREM', queue, member)
return 0
`)

// renewScript extends the lease iff the caller still owns the lock.
//
// KEYS[1] lock key, KEYS[2] metadata hash
// ARGV[1] owner, ARGV[2] additional ttl ms, ARGV[3] now ms
var renewScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
  return 0
end
local ttl = tonumber(ARGV[2])
redis.call('PEXPIRE', KEYS[1], ttl)
redis.call('PEXPIRE', KEYS[2], ttl)
redis.call('HSET', KEYS[2], 'expires_at', tonumber(ARGV[3]) + ttl)
redis.call('HINCRBY', KEYS[2], 'renewal_count', 1)
return 1
`)

// releaseScript deletes the lock iff the caller owns it
// (check-owner-and-delete in one round trip).
//
// KEYS[1] lock key, KEYS[2] metadata hash
// ARGV[1] owner
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
  return 0
end
redis.call('DEL', KEYS[1])
redis.call('DEL', KEYS[2])
return 1
`)
