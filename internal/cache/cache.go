package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/softnews/softnews/internal/logger"
)

// envelope wraps the cached payload with its write time. The TTL check runs
// against WrittenAt on every read, so expiry holds even when the backing
// store keeps the raw entry around past its deadline.
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	WrittenAt int64           `json:"timestamp"`
}

// Cache is a single time-boxed slot for one payload type: read before any
// upstream call, written after a successful one. A failed read or write
// degrades to "always fetch" and is never surfaced to the caller.
type Cache[T any] struct {
	store Store
	key   string
	ttl   time.Duration
	now   func() time.Time
}

func New[T any](store Store, key string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		store: store,
		key:   key,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Read returns the cached payload and true if a fresh entry exists. Absent,
// expired, and undecodable entries all report a miss.
func (c *Cache[T]) Read(ctx context.Context) (T, bool) {
	var zero T

	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache read failed")
		return zero, false
	}
	if !found {
		return zero, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache entry corrupt")
		return zero, false
	}

	age := c.now().UnixMilli() - env.WrittenAt
	if age < 0 || time.Duration(age)*time.Millisecond > c.ttl {
		return zero, false
	}

	var payload T
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache payload corrupt")
		return zero, false
	}
	return payload, true
}

// Write overwrites the slot with the payload and the current time. Storage
// failures are logged and swallowed.
func (c *Cache[T]) Write(ctx context.Context, payload T) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache payload not serializable")
		return
	}

	env := envelope{Payload: data, WrittenAt: c.now().UnixMilli()}
	raw, err := json.Marshal(env)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache envelope not serializable")
		return
	}

	if err := c.store.Set(ctx, c.key, string(raw), c.ttl); err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache write failed")
	}
}

// Invalidate drops the slot.
func (c *Cache[T]) Invalidate(ctx context.Context) {
	if err := c.store.Del(ctx, c.key); err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key).Msg("cache invalidate failed")
	}
}
