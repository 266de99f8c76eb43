package memory

import (
	"context"
	"sync"
	"time"

	"creature-reviews/internal/ports/cache"
)

type cacheEntry struct {
	value      []byte
	absolute   time.Time // cero = sin vencimiento absoluto
	sliding    time.Duration
	lastAccess time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	if !e.absolute.IsZero() && !now.Before(e.absolute) {
		return true
	}
	if e.sliding > 0 && !now.Before(e.lastAccess.Add(e.sliding)) {
		return true
	}
	return false
}

// Cache es el backend en proceso de cache.Cache. Las entradas vencidas se
// descartan al leerlas.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

type CacheOption func(*Cache)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	now := c.now()
	if e.expired(now) {
		delete(c.entries, key)
		return nil, false, nil
	}

	e.lastAccess = now
	c.entries[key] = e
	return append([]byte(nil), e.value...), true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, opts cache.EntryOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e := cacheEntry{
		value:      append([]byte(nil), value...),
		sliding:    opts.Sliding,
		lastAccess: now,
	}
	if opts.Absolute > 0 {
		e.absolute = now.Add(opts.Absolute)
	}
	c.entries[key] = e
	return nil
}

func (c *Cache) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
