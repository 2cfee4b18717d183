package asset

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/tui-tilegame/internal/core"
)

// DefaultCacheSize bounds the cache when no size is configured.
const DefaultCacheSize = 64

// CacheStats reports cache activity since the last Reset.
type CacheStats struct {
	Hits      int
	Misses    int
	Evictions int
	Entries   int
}

// Cache memoises a Resolver. It holds at most maxEntries images, evicting the
// least recently used one, and is meant to be Reset on every level change.
type Cache struct {
	mu       sync.Mutex
	resolver Resolver
	images   *lru.Cache[int, core.Image]
	stats    CacheStats
}

// NewCache wraps r. A maxEntries of zero or less uses DefaultCacheSize.
func NewCache(r Resolver, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	c := &Cache{resolver: r}
	// Only fails for a non-positive size.
	c.images, _ = lru.NewWithEvict(maxEntries, c.evicted)
	return c
}

// evicted runs inside lru calls, which are only made with c.mu held.
func (c *Cache) evicted(int, core.Image) {
	c.stats.Evictions++
}

// Resolve returns the cached image for ref, resolving it on a miss.
// Failed resolutions are not cached.
func (c *Cache) Resolve(ref int) (core.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images.Get(ref); ok {
		c.stats.Hits++
		return img, nil
	}

	c.stats.Misses++
	img, err := c.resolver.Resolve(ref)
	if err != nil {
		return core.Image{}, err
	}
	c.images.Add(ref, img)
	return img, nil
}

// Reset drops every entry and zeroes the stats.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images.Purge()
	c.stats = CacheStats{}
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.images.Len()
}

// Stats returns a copy of the current counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.images.Len()
	return s
}
