package querycache

import (
	"context"
	"time"
)

// Store is the backing storage for cached list results and per-entity
// generation counters.
type Store interface {
	// Get returns the value under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Generation returns the current counter under key, 0 if never bumped.
	Generation(ctx context.Context, key string) (int64, error)
	// Bump increments the counter under key and returns the new value.
	Bump(ctx context.Context, key string) (int64, error)
}
