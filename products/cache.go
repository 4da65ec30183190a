package products

import (
	"context"
	"sync"
	"time"

	"vitrin/models"
)

// FetchFunc loads a product from the backing store.
type FetchFunc func(ctx context.Context, id string) (*models.Product, error)

// Cache is a short-TTL product cache with single-flight fetch dedup:
// concurrent callers asking for the same id share one in-flight load
// instead of each hitting the database.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	fetch    FetchFunc
	entries  map[string]cacheEntry
	inflight map[string]*call
	now      func() time.Time
}

type cacheEntry struct {
	product *models.Product
	expires time.Time
}

type call struct {
	done    chan struct{}
	product *models.Product
	err     error
}

func NewCache(ttl time.Duration, fetch FetchFunc) *Cache {
	return &Cache{
		ttl:      ttl,
		fetch:    fetch,
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string]*call),
		now:      time.Now,
	}
}

// Get returns the cached product or loads it, deduping concurrent loads.
// Errors are not cached; the next caller retries.
func (c *Cache) Get(ctx context.Context, id string) (*models.Product, error) {
	c.mu.Lock()
	if entry, ok := c.entries[id]; ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.product, nil
	}
	if existing, ok := c.inflight[id]; ok {
		c.mu.Unlock()
		select {
		case <-existing.done:
			return existing.product, existing.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[id] = cl
	c.mu.Unlock()

	cl.product, cl.err = c.fetch(ctx, id)

	c.mu.Lock()
	delete(c.inflight, id)
	if cl.err == nil {
		c.entries[id] = cacheEntry{product: cl.product, expires: c.now().Add(c.ttl)}
	}
	c.mu.Unlock()
	close(cl.done)

	return cl.product, cl.err
}

// Invalidate drops one entry immediately.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// InvalidateAfter drops the entry once the delay passes. Mutations schedule
// this so readers racing the write settle on the stored version.
func (c *Cache) InvalidateAfter(id string, delay time.Duration) {
	time.AfterFunc(delay, func() { c.Invalidate(id) })
}

// NewCatalog builds the product cache backed by the mongo collection.
// main constructs one and hands it to every consumer.
func NewCatalog() *Cache {
	return NewCache(30*time.Second, fetchProduct)
}
