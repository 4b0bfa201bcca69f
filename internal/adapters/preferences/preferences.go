// Package preferences keeps per-client key-value preferences such as the color theme.
package preferences

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Default expiry settings.
const (
	defaultTTL             = 30 * 24 * time.Hour
	defaultCleanupInterval = time.Hour
)

// Store gets and sets string preferences by key.
type Store interface {
	// Get returns the value stored under key and whether one exists.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string)

	// Len returns the number of live entries.
	Len() int
}

// Option applies a configuration option to the cache-backed store.
type Option func(*cacheStore)

// WithTTL sets how long an untouched preference is kept.
func WithTTL(ttl time.Duration) Option {
	return func(s *cacheStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithCleanupInterval sets how often expired preferences are purged.
func WithCleanupInterval(interval time.Duration) Option {
	return func(s *cacheStore) {
		if interval > 0 {
			s.cleanup = interval
		}
	}
}

type cacheStore struct {
	ttl     time.Duration
	cleanup time.Duration
	c       *cache.Cache
}

// NewMemoryStore creates an in-memory Store whose entries expire after the TTL.
func NewMemoryStore(opts ...Option) Store {
	s := &cacheStore{
		ttl:     defaultTTL,
		cleanup: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.c = cache.New(s.ttl, s.cleanup)
	return s
}

func (s *cacheStore) Get(_ context.Context, key string) (string, bool) {
	v, found := s.c.Get(key)
	if !found {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *cacheStore) Set(_ context.Context, key, value string) {
	s.c.Set(key, value, cache.DefaultExpiration)
}

func (s *cacheStore) Len() int { return s.c.ItemCount() }

// Key scopes a preference name to one client.
func Key(clientID, name string) string { return clientID + ":" + name }
