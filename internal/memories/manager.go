// Package memories implements cache-aside access to agent memories: the
// cache is consulted first, and the manager - not the cache - loads from
// the record store on a miss and populates the cache.
package memories

import (
	"time"

	"memory-cache/internal/cache"
	"memory-cache/internal/common/logging"
	"memory-cache/internal/storage"
)

// Manager coordinates the cache and the record store.
type Manager struct {
	cache  *cache.Cache
	store  storage.Storage
	logger logging.Logger
}

// NewManager wires a cache in front of a record store.
func NewManager(c *cache.Cache, store storage.Storage, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Manager{
		cache:  c,
		store:  store,
		logger: logger.WithFields(logging.String("component", "memories")),
	}
}

// Get returns the memory's content, from the cache when possible. On a
// cache miss it loads from the store and populates the cache for future
// reads. A missing record surfaces as a not-found error from the store.
func (m *Manager) Get(agentID, memoryType, memoryKey string) (map[string]interface{}, error) {
	key := cache.NewKey(agentID, memoryType, memoryKey)

	if data, ok := m.cache.Get(key); ok {
		return data, nil
	}

	content, err := m.store.Load(agentID, memoryType, memoryKey)
	if err != nil {
		return nil, err
	}

	m.cache.Put(key, content)
	m.logger.Debug("cache populated from store", logging.String("key", key.String()))
	return content, nil
}

// Save writes the memory to the record store, then refreshes the cache.
// The store is the source of truth; the cache write happens only after
// the store write succeeds.
func (m *Manager) Save(agentID, memoryType, memoryKey string, content map[string]interface{}) error {
	if err := m.store.Save(agentID, memoryType, memoryKey, content); err != nil {
		return err
	}

	m.cache.Put(cache.NewKey(agentID, memoryType, memoryKey), content)
	return nil
}

// SaveWithTTL is Save with an explicit cache TTL for the entry.
func (m *Manager) SaveWithTTL(agentID, memoryType, memoryKey string, content map[string]interface{}, ttl time.Duration) error {
	if err := m.store.Save(agentID, memoryType, memoryKey, content); err != nil {
		return err
	}

	m.cache.PutWithTTL(cache.NewKey(agentID, memoryType, memoryKey), content, ttl)
	return nil
}

// Delete removes the memory from the store and the cache, reporting
// whether a durable record existed.
func (m *Manager) Delete(agentID, memoryType, memoryKey string) (bool, error) {
	existed, err := m.store.Delete(agentID, memoryType, memoryKey)
	if err != nil {
		return false, err
	}

	m.cache.Remove(cache.NewKey(agentID, memoryType, memoryKey))
	return existed, nil
}

// List returns all durable records for an agent, straight from the
// store. It does not touch the cache.
func (m *Manager) List(agentID string) ([]*storage.MemoryRecord, error) {
	return m.store.ListAgent(agentID)
}

// Invalidate drops an agent's cached entries without touching the store
// and returns the number removed.
func (m *Manager) Invalidate(agentID string) int {
	removed := m.cache.ClearAgent(agentID)
	if removed > 0 {
		m.logger.Debug("agent cache invalidated",
			logging.String("agent_id", agentID),
			logging.Int("removed", removed),
		)
	}
	return removed
}
