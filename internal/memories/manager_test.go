package memories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memory-cache/internal/cache"
	"memory-cache/internal/common/errors"
	"memory-cache/internal/storage"
)

// fakeStore is an in-memory storage.Storage that counts Load calls.
type fakeStore struct {
	records map[[3]string]map[string]interface{}
	loads   int
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[[3]string]map[string]interface{})}
}

func (s *fakeStore) Load(agentID, memoryType, memoryKey string) (map[string]interface{}, error) {
	s.loads++
	content, ok := s.records[[3]string{agentID, memoryType, memoryKey}]
	if !ok {
		return nil, errors.NotFoundError("memory")
	}
	return content, nil
}

func (s *fakeStore) Save(agentID, memoryType, memoryKey string, content map[string]interface{}) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[[3]string{agentID, memoryType, memoryKey}] = content
	return nil
}

func (s *fakeStore) Delete(agentID, memoryType, memoryKey string) (bool, error) {
	key := [3]string{agentID, memoryType, memoryKey}
	_, ok := s.records[key]
	delete(s.records, key)
	return ok, nil
}

func (s *fakeStore) ListAgent(agentID string) ([]*storage.MemoryRecord, error) {
	var records []*storage.MemoryRecord
	for key, content := range s.records {
		if key[0] != agentID {
			continue
		}
		records = append(records, &storage.MemoryRecord{
			AgentID:    key[0],
			MemoryType: key[1],
			MemoryKey:  key[2],
			Content:    content,
			UpdatedAt:  time.Now(),
		})
	}
	return records, nil
}

func (s *fakeStore) Health() error { return nil }
func (s *fakeStore) Close() error  { return nil }

func newTestManager(t *testing.T) (*Manager, *fakeStore, *cache.Cache) {
	t.Helper()
	c, err := cache.New(cache.Config{Capacity: 10})
	require.NoError(t, err)
	store := newFakeStore()
	return NewManager(c, store, nil), store, c
}

func TestGet_CacheAside(t *testing.T) {
	m, store, _ := newTestManager(t)

	content := map[string]interface{}{"v": 1}
	require.NoError(t, store.Save("agent1", "decision", "k", content))

	// First read misses the cache and hits the store.
	got, err := m.Get("agent1", "decision", "k")
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, 1, store.loads)

	// Second read is served from the cache.
	got, err = m.Get("agent1", "decision", "k")
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, 1, store.loads, "store must not be consulted on a cache hit")
}

func TestGet_NotFound(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.Get("ghost", "none", "nothing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSave_WritesStoreThenCache(t *testing.T) {
	m, store, c := newTestManager(t)

	content := map[string]interface{}{"v": 2}
	require.NoError(t, m.Save("agent1", "pref", "k", content))

	// Durable record exists.
	_, ok := store.records[[3]string{"agent1", "pref", "k"}]
	assert.True(t, ok)

	// Cache was populated: Get never reaches the store.
	got, err := m.Get("agent1", "pref", "k")
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, 0, store.loads)
	assert.Equal(t, 1, c.Len())
}

func TestSave_StoreFailureSkipsCache(t *testing.T) {
	m, store, c := newTestManager(t)
	store.saveErr = errors.ConnectionError("db down", nil)

	err := m.Save("agent1", "pref", "k", map[string]interface{}{"v": 1})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len(), "cache must not hold data the store rejected")
}

func TestDelete_RemovesBoth(t *testing.T) {
	m, store, c := newTestManager(t)

	require.NoError(t, m.Save("agent1", "pref", "k", map[string]interface{}{"v": 1}))

	existed, err := m.Delete("agent1", "pref", "k")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Empty(t, store.records)
	assert.Equal(t, 0, c.Len())

	existed, err = m.Delete("agent1", "pref", "k")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestInvalidate(t *testing.T) {
	m, store, _ := newTestManager(t)

	require.NoError(t, m.Save("agent1", "pref", "k1", map[string]interface{}{"v": 1}))
	require.NoError(t, m.Save("agent1", "pref", "k2", map[string]interface{}{"v": 2}))
	require.NoError(t, m.Save("agent2", "pref", "k1", map[string]interface{}{"v": 3}))

	removed := m.Invalidate("agent1")
	assert.Equal(t, 2, removed)

	// The store still has the records; the next Get reloads from it.
	_, err := m.Get("agent1", "pref", "k1")
	require.NoError(t, err)
	assert.Equal(t, 1, store.loads)
}

func TestSaveWithTTL(t *testing.T) {
	m, _, c := newTestManager(t)

	require.NoError(t, m.SaveWithTTL("agent1", "session", "token", map[string]interface{}{"v": 1}, time.Hour))
	assert.Equal(t, 1, c.Len())
}
