package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memory-cache/internal/common/errors"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(&Config{DatabasePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{DatabasePath: ":memory:"}).Validate())
}

func TestSaveAndLoad(t *testing.T) {
	a := newTestAdapter(t)

	content := map[string]interface{}{"strategy": "healing", "confidence": 0.9}
	require.NoError(t, a.Save("agent1", "decision", "strategy", content))

	loaded, err := a.Load("agent1", "decision", "strategy")
	require.NoError(t, err)
	assert.Equal(t, "healing", loaded["strategy"])
	assert.Equal(t, 0.9, loaded["confidence"])
}

func TestLoad_NotFound(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.Load("nobody", "none", "nothing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSave_Upsert(t *testing.T) {
	a := newTestAdapter(t)

	require.NoError(t, a.Save("agent1", "pref", "k", map[string]interface{}{"v": "old"}))
	require.NoError(t, a.Save("agent1", "pref", "k", map[string]interface{}{"v": "new"}))

	loaded, err := a.Load("agent1", "pref", "k")
	require.NoError(t, err)
	assert.Equal(t, "new", loaded["v"])

	records, err := a.ListAgent("agent1")
	require.NoError(t, err)
	assert.Len(t, records, 1, "upsert must not duplicate rows")
}

func TestDelete(t *testing.T) {
	a := newTestAdapter(t)

	require.NoError(t, a.Save("agent1", "pref", "k", map[string]interface{}{"v": 1}))

	existed, err := a.Delete("agent1", "pref", "k")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = a.Delete("agent1", "pref", "k")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestListAgent(t *testing.T) {
	a := newTestAdapter(t)

	require.NoError(t, a.Save("agent1", "decision", "k1", map[string]interface{}{"v": 1.0}))
	require.NoError(t, a.Save("agent1", "pref", "k2", map[string]interface{}{"v": 2.0}))
	require.NoError(t, a.Save("agent2", "pref", "k1", map[string]interface{}{"v": 3.0}))

	records, err := a.ListAgent("agent1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "decision", records[0].MemoryType)
	assert.Equal(t, map[string]interface{}{"v": 1.0}, records[0].Content)
	assert.False(t, records[0].UpdatedAt.IsZero())

	records, err = a.ListAgent("ghost")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHealth(t *testing.T) {
	a := newTestAdapter(t)
	assert.NoError(t, a.Health())
}
