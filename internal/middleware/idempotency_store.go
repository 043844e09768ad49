package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// in-flight markers expire sooner than responses so a crashed request
// does not block its key for the whole TTL
const pendingTTL = time.Minute

// expired entries of keys never seen again are removed at most this often
const sweepInterval = time.Minute

// ======================================================
// MEMORY
// ======================================================

type memoryEntry struct {
	resp      *CachedResponse
	expiresAt time.Time
}

type InMemoryIdempotencyStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	store     map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewInMemoryIdempotencyStore(ttl time.Duration) *InMemoryIdempotencyStore {
	return &InMemoryIdempotencyStore{
		ttl:   ttl,
		store: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (s *InMemoryIdempotencyStore) Get(_ context.Context, key string) (*CachedResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, false, nil
	}
	return e.resp, true, nil
}

func (s *InMemoryIdempotencyStore) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.store[key] = memoryEntry{
		resp:      &CachedResponse{Pending: true},
		expiresAt: s.now().Add(pendingTTL),
	}
	return true, nil
}

func (s *InMemoryIdempotencyStore) Save(_ context.Context, key string, resp *CachedResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.store[key] = memoryEntry{resp: resp, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.store, key)
	return nil
}

// sweep drops every expired entry. Callers hold mu.
func (s *InMemoryIdempotencyStore) sweep() {
	now := s.now()
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now

	for key, e := range s.store {
		if now.After(e.expiresAt) {
			delete(s.store, key)
		}
	}
}

func (s *InMemoryIdempotencyStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.store)
}

// lookup drops expired entries. Callers hold mu.
func (s *InMemoryIdempotencyStore) lookup(key string) (memoryEntry, bool) {
	e, ok := s.store[key]
	if !ok {
		return memoryEntry{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.store, key)
		return memoryEntry{}, false
	}
	return e, true
}

// ======================================================
// REDIS
// ======================================================

type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		client: client,
		ttl:    ttl,
		prefix: "idempotency:",
	}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CachedResponse, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	marker, err := json.Marshal(CachedResponse{Pending: true})
	if err != nil {
		return false, err
	}
	return s.client.SetNX(ctx, s.prefix+key, marker, pendingTTL).Result()
}

func (s *RedisIdempotencyStore) Save(ctx context.Context, key string, resp *CachedResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+key, raw, s.ttl).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
