package cache

import "math"

// Stats is a point-in-time snapshot of cache statistics.
type Stats struct {
	Size          int     `json:"size"`
	Capacity      int     `json:"max_size"`
	Hits          uint64  `json:"hits"`
	Misses        uint64  `json:"misses"`
	HitRate       float64 `json:"hit_rate_percent"`
	TotalRequests uint64  `json:"total_requests"`
}

// Stats returns current size, capacity, hit/miss counters and the derived
// hit rate as a percentage rounded to two decimals (0 when no lookups
// have completed yet). Hits and misses advance only on Get; Put, Remove
// and the scan operations never move them.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(c.hits)/float64(total)*100*100) / 100
	}

	return Stats{
		Size:          len(c.items),
		Capacity:      c.capacity,
		Hits:          c.hits,
		Misses:        c.misses,
		HitRate:       rate,
		TotalRequests: total,
	}
}
