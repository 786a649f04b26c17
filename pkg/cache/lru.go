package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a thread-safe least-recently-used cache.
type LRU[K comparable, V any] struct {
	capacity int
	mu       sync.Mutex
	items    map[K]*list.Element
	order    *list.List

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLRU creates a cache holding at most capacity entries. It panics when
// capacity is not positive.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		c.hits.Add(1)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	c.misses.Add(1)
	var zero V
	return zero, false
}

// Put stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry[K, V]).key)
	}
}

// GetOrCompute returns the cached value for key, computing and storing it
// with fn on a miss. fn runs outside the lock, so concurrent misses on the
// same key may each call it; fn must be pure.
func (c *LRU[K, V]) GetOrCompute(key K, fn func(K) V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn(key)
	c.Put(key, v)
	return v
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the hit and miss counters since creation.
func (c *LRU[K, V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
