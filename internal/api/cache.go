package api

import (
	"context"
	"courtside/internal/terminal"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a response stays fresh.
const DefaultCacheTTL = 30 * time.Second

type cacheEntry struct {
	value     interface{}
	fetchedAt time.Time
}

// Cache sits in front of a Backend. Fresh responses are served from memory,
// and concurrent requests for the same key share one backend call.
type Cache struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewCache wraps backend. A ttl <= 0 uses DefaultCacheTTL.
func NewCache(backend Backend, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Cache keys. The per-player keys carry the focused id and stat window,
// the only terminal state the fetch layer depends on.
func rankingsKey() string { return "rankings" }

func statsKey(id int, window terminal.StatWindow) string {
	return fmt.Sprintf("stats/%d/%s", id, window)
}

func gameLogKey(id, limit int) string {
	return fmt.Sprintf("gamelog/%d/%d", id, limit)
}

// RankedPlayers returns the cached ranked list, fetching it when stale.
func (c *Cache) RankedPlayers(ctx context.Context) ([]Player, error) {
	return fetch(ctx, c, rankingsKey(), c.backend.RankedPlayers)
}

// PlayerStats returns cached stats for (id, window).
func (c *Cache) PlayerStats(ctx context.Context, id int, window terminal.StatWindow) (StatLine, error) {
	return fetch(ctx, c, statsKey(id, window), func(ctx context.Context) (StatLine, error) {
		return c.backend.PlayerStats(ctx, id, window)
	})
}

// GameLog returns the cached game log for (id, limit).
func (c *Cache) GameLog(ctx context.Context, id int, limit int) ([]GameLogEntry, error) {
	return fetch(ctx, c, gameLogKey(id, limit), func(ctx context.Context) ([]GameLogEntry, error) {
		return c.backend.GameLog(ctx, id, limit)
	})
}

// Invalidate drops every entry whose key starts with prefix. An empty
// prefix clears the cache.
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of cached entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) lookup(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: v, fetchedAt: c.now()}
}

// fetch serves key from the cache or loads it once for all waiters.
// Errors are never cached. The shared load runs detached from any single
// caller's cancellation so one caller giving up does not fail the others.
func fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.lookup(key); ok {
		return v.(T), nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

var (
	_ Backend = (*Client)(nil)
	_ Backend = (*Cache)(nil)
)
