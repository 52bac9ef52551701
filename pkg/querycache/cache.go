// Package querycache is the keyed store behind module queries.
//
// Entries are keyed by a module key plus optional params (the pagination state
// for paged modules). Invalidate marks every entry of a module stale: the
// value stays available through Peek but Get misses, so the next read refetches.
package querycache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"erp-admin/pkg/metrics"
)

// Config holds cache bounds. Zero values pick the defaults below.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

const (
	DefaultMaxEntries = 256
	DefaultTTL        = 5 * time.Minute
)

type entry struct {
	module    string
	value     any
	stale     bool
	updatedAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *entry]
	now func() time.Time
}

// New creates a cache bounded by cfg.
func New(cfg Config) *Cache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Cache{
		lru: expirable.NewLRU[string, *entry](cfg.MaxEntries, nil, cfg.TTL),
		now: time.Now,
	}
}

// Key encodes [module] or [module, params]. params must be JSON-marshalable;
// struct field order keeps the encoding deterministic.
func Key(module string, params any) string {
	if params == nil {
		return module
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return module
	}
	return module + "\x00" + string(raw)
}

// Get returns a fresh value. Stale or missing entries report false.
func (c *Cache) Get(module string, params any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(Key(module, params))
	if !ok {
		metrics.CacheMiss()
		return nil, false
	}
	if e.stale {
		metrics.CacheStale()
		return nil, false
	}
	metrics.CacheHit()
	return e.value, true
}

// Peek returns the value even when stale, without touching recency.
func (c *Cache) Peek(module string, params any) (value any, stale bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.lru.Peek(Key(module, params))
	if !found {
		return nil, false, false
	}
	return e.value, e.stale, true
}

// Set stores a fresh value.
func (c *Cache) Set(module string, params any, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(Key(module, params), &entry{
		module:    module,
		value:     value,
		updatedAt: c.now(),
	})
}

// Invalidate marks every entry of module stale and returns how many were marked.
func (c *Cache) Invalidate(module string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, k := range c.lru.Keys() {
		e, ok := c.lru.Peek(k)
		if !ok || e.module != module || e.stale {
			continue
		}
		e.stale = true
		n++
	}
	metrics.CacheInvalidated(n)
	return n
}

// IsStale reports whether the entry exists and has been invalidated.
func (c *Cache) IsStale(module string, params any) bool {
	_, stale, ok := c.Peek(module, params)
	return ok && stale
}

// Len returns the number of live entries, stale ones included.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops everything.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Lookup is Get with the value asserted to T.
func Lookup[T any](c *Cache, module string, params any) (T, bool) {
	var zero T
	v, ok := c.Get(module, params)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Placeholder returns the last stored value for the key even when stale.
func Placeholder[T any](c *Cache, module string, params any) (T, bool) {
	var zero T
	v, _, ok := c.Peek(module, params)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
