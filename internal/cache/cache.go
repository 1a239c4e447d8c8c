package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"memory-cache/internal/common/errors"
)

// Config holds construction-time cache configuration.
type Config struct {
	// Capacity is the maximum number of entries before LRU eviction.
	// It must be positive.
	Capacity int
	// DefaultTTL applies to entries inserted without a per-call override.
	// Zero means entries never expire unless given one.
	DefaultTTL time.Duration
}

// Validate checks the configuration before an instance is built.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.ValidationError(fmt.Sprintf("cache capacity must be positive, got %d", c.Capacity))
	}
	if c.DefaultTTL < 0 {
		return errors.ValidationError(fmt.Sprintf("cache default TTL must not be negative, got %s", c.DefaultTTL))
	}
	return nil
}

// Cache is a concurrency-safe bounded LRU cache with lazy TTL expiration
// and hit/miss accounting.
//
// Every public method takes the mutex exactly once for its full duration
// and never calls another public method while holding it. Get mutates
// recency and counters, so it locks exclusively like the writers.
type Cache struct {
	mu sync.Mutex

	capacity   int
	defaultTTL time.Duration

	items map[Key]*list.Element
	lru   *list.List // Front = most recently used, Back = eviction victim

	hits   uint64
	misses uint64

	now func() time.Time // injectable clock for deterministic TTL tests
}

// New constructs a cache, failing fast on invalid configuration.
func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Cache{
		capacity:   cfg.Capacity,
		defaultTTL: cfg.DefaultTTL,
		items:      make(map[Key]*list.Element),
		lru:        list.New(),
		now:        time.Now,
	}, nil
}

// Put inserts or replaces the entry at key with the cache's default TTL.
// The entry becomes most recently used; the LRU entry is evicted if the
// insert pushes the cache over capacity.
func (c *Cache) Put(key Key, data map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, data, c.defaultTTL)
}

// PutWithTTL is Put with an explicit per-entry TTL override. A zero or
// negative ttl means the entry never expires, regardless of the default.
func (c *Cache) PutWithTTL(key Key, data map[string]interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, data, ttl)
}

func (c *Cache) putLocked(key Key, data map[string]interface{}, ttl time.Duration) {
	if el, ok := c.items[key]; ok {
		// Re-insert with the same key refreshes data, TTL and recency.
		e := el.Value.(*entry)
		e.data = data
		e.createdAt = c.now()
		e.ttl = ttl
		e.accessCount = 0
		c.lru.MoveToFront(el)
		return
	}

	el := c.lru.PushFront(&entry{
		key:       key,
		data:      data,
		createdAt: c.now(),
		ttl:       ttl,
	})
	c.items[key] = el

	for len(c.items) > c.capacity {
		victim := c.lru.Back()
		if victim == nil {
			break
		}
		c.removeElementLocked(victim)
	}
}

// Get returns the data at key. Absent keys record a miss. Expired entries
// are removed on observation and record a miss. A hit promotes the entry
// to most recently used and increments its access counter.
func (c *Cache) Get(key Key) (map[string]interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	e := el.Value.(*entry)
	if e.expired(c.now()) {
		c.removeElementLocked(el)
		c.misses++
		return nil, false
	}

	c.lru.MoveToFront(el)
	e.touch()
	c.hits++
	return e.data, true
}

// Remove deletes the entry at key and reports whether it existed.
// No expiry check is performed: a present-but-expired entry still counts
// as removed. Counters are untouched.
func (c *Cache) Remove(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElementLocked(el)
	return true
}

// ClearAgent removes every entry whose AgentID equals agentID exactly and
// returns the number removed. Agent "x" never matches agent "xy".
func (c *Cache) ClearAgent(agentID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, el := range c.items {
		if key.AgentID == agentID {
			c.removeElementLocked(el)
			removed++
		}
	}
	return removed
}

// CleanupExpired sweeps the whole cache, removing every entry expired at
// the current clock, and returns the number removed. O(n) under the lock.
func (c *Cache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, el := range c.items {
		if el.Value.(*entry).expired(now) {
			c.removeElementLocked(el)
			removed++
		}
	}
	return removed
}

// ClearAll empties the cache and resets the hit/miss counters.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[Key]*list.Element)
	c.lru.Init()
	c.hits = 0
	c.misses = 0
}

// Entries returns a snapshot of all non-expired entries, optionally
// filtered to an exact agent match (empty agentID means all agents). It
// is diagnostic: recency order, access counters and hit/miss counters are
// left untouched.
func (c *Cache) Entries(agentID string) map[Key]map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	result := make(map[Key]map[string]interface{})
	for key, el := range c.items {
		if agentID != "" && key.AgentID != agentID {
			continue
		}
		e := el.Value.(*entry)
		if e.expired(now) {
			continue
		}
		result[key] = e.data
	}
	return result
}

// Len returns the current entry count, including entries that have
// expired but not yet been observed.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) removeElementLocked(el *list.Element) {
	e := el.Value.(*entry)
	delete(c.items, e.key)
	c.lru.Remove(el)
}
