package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewInMemoryCache(time.Minute, 0)
	c.now = func() time.Time { return now }

	c.Set(ctx, "plans", []string{"free"})
	v, ok := c.Get(ctx, "plans")
	assert.True(t, ok)
	assert.Equal(t, []string{"free"}, v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "plans")
	assert.False(t, ok)

	c.evictExpired()
	assert.Empty(t, c.items)

	c.Set(ctx, "a", 1)
	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, "b", 2)
	c.Purge()
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestInMemoryCacheCleanupStops(t *testing.T) {
	c := NewInMemoryCache(time.Millisecond, time.Millisecond)
	c.StartCleanup(context.Background())
	c.Set(context.Background(), "k", "v")

	assert.Eventually(t, func() bool {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return len(c.items) == 0
	}, time.Second, 5*time.Millisecond)

	c.StopCleanup()
	c.StopCleanup()
}
