package cache

import "time"

// entry is the value stored in the recency list elements. The key lives
// here because eviction starts from list nodes.
type entry struct {
	key         Key
	data        map[string]interface{}
	createdAt   time.Time
	ttl         time.Duration // 0 means no expiration
	accessCount int64
}

// expired reports whether the entry's TTL has elapsed at now.
func (e *entry) expired(now time.Time) bool {
	if e.ttl <= 0 {
		return false
	}
	return now.Sub(e.createdAt) > e.ttl
}

// touch records a successful lookup.
func (e *entry) touch() {
	e.accessCount++
}
