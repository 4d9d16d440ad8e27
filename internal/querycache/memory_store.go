package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in process memory. Suitable for a single instance.
type MemoryStore struct {
	cache *gocache.Cache
	mu    sync.Mutex
}

func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("unexpected value type %T under %q", v, key)
	}
	return raw, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Generation(_ context.Context, key string) (int64, error) {
	v, found := s.cache.Get(key)
	if !found {
		return 0, nil
	}
	gen, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected generation type %T under %q", v, key)
	}
	return gen, nil
}

func (s *MemoryStore) Bump(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.cache.Get(key); !found {
		s.cache.Set(key, int64(0), gocache.NoExpiration)
	}
	return s.cache.IncrementInt64(key, 1)
}
