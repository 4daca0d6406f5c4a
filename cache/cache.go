// Package cache provides the bounded, TTL-aware response cache shared by
// the translation and correction workflows.
//
// Eviction is by insertion order: Get and Has promote an entry to the
// most-recently-inserted position, and Set always evicts the oldest
// remaining entry when the cache is full. Expiry is checked lazily on read.
// Each call holds one mutex for its whole duration, so promotion and
// eviction are single logical steps even under concurrent workflows.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Defaults used when New is given non-positive arguments.
const (
	DefaultCapacity = 100
	DefaultTTL      = 30 * time.Minute
)

type entry struct {
	key       string
	value     string
	timestamp time.Time
}

// Cache is a bounded LRU with TTL, keyed by request fingerprints.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // oldest insertion at the front
	items    map[string]*list.Element
	now      func() time.Time
}

// New creates a Cache with the given capacity and TTL. Non-positive
// arguments fall back to the package defaults.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get returns the cached value for key. A live entry is promoted to the
// most-recently-inserted position; an expired entry is removed and reported
// as absent.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	e := el.Value.(*entry)
	if c.now().Sub(e.timestamp) > c.ttl {
		c.remove(el)
		return "", false
	}
	c.order.MoveToBack(el)
	return e.value, true
}

// Has reports whether key holds a live entry. It shares Get's lazy-expiry
// and promotion side effects.
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set stores value under key with the current timestamp. Any existing entry
// for key is removed first to normalize its position; when the cache is at
// capacity, the oldest-inserted entry is evicted.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Front(); oldest != nil {
			c.remove(oldest)
		}
	}
	c.items[key] = c.order.PushBack(&entry{key: key, value: value, timestamp: c.now()})
}

// Len returns the number of entries, including any not yet lazily expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) remove(el *list.Element) {
	delete(c.items, el.Value.(*entry).key)
	c.order.Remove(el)
}
