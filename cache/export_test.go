package cache

import "time"

// SetClock replaces the cache's time source for TTL tests.
func SetClock(c *Cache, now func() time.Time) {
	c.now = now
}
