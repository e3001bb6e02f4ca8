// Package cache holds a small in-process TTL cache.
package cache

import (
	"context"
	"sync"
	"time"
)

type item struct {
	value     any
	expiresAt time.Time
}

// InMemoryCache is a mutex-guarded map whose entries expire after a fixed TTL.
type InMemoryCache struct {
	mu      sync.RWMutex
	items   map[string]item
	ttl     time.Duration
	cleanup time.Duration
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
}

func NewInMemoryCache(ttl, cleanup time.Duration) *InMemoryCache {
	return &InMemoryCache{
		items:   make(map[string]item),
		ttl:     ttl,
		cleanup: cleanup,
		now:     time.Now,
	}
}

func (c *InMemoryCache) Set(_ context.Context, key string, value any) {
	c.mu.Lock()
	c.items[key] = item{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *InMemoryCache) Get(_ context.Context, key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Purge drops every entry.
func (c *InMemoryCache) Purge() {
	c.mu.Lock()
	c.items = make(map[string]item)
	c.mu.Unlock()
}

// StartCleanup evicts expired entries every cleanup interval until ctx is
// done or StopCleanup is called.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	if c.cleanup <= 0 || c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})

	go func() {
		ticker := time.NewTicker(c.cleanup)
		defer ticker.Stop()
		defer close(c.done)

		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *InMemoryCache) StopCleanup() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	<-c.done
	c.stop = nil
}

func (c *InMemoryCache) evictExpired() {
	now := c.now()
	c.mu.Lock()
	for k, it := range c.items {
		if !now.Before(it.expiresAt) {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()
}
