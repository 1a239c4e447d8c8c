package maintenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memory-cache/internal/cache"
)

func newCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{Capacity: 10})
	require.NoError(t, err)
	return c
}

func TestStart_EmptySpecIsDisabled(t *testing.T) {
	s := NewScheduler(newCache(t), "", nil)

	require.NoError(t, s.Start())
	assert.Nil(t, s.cron)
	s.Stop() // safe when never started
}

func TestStart_InvalidSpec(t *testing.T) {
	s := NewScheduler(newCache(t), "not a cron spec", nil)
	assert.Error(t, s.Start())
}

func TestStart_ValidSpec(t *testing.T) {
	s := NewScheduler(newCache(t), "*/5 * * * *", nil)

	require.NoError(t, s.Start())
	require.NotNil(t, s.cron)
	s.Stop()
}

func TestSweep(t *testing.T) {
	c := newCache(t)
	s := NewScheduler(c, "", nil)

	c.Put(cache.NewKey("a", "t", "keeper"), map[string]interface{}{"v": 1})

	// A sweep with nothing expired removes nothing.
	s.sweep()
	assert.Equal(t, 1, c.Len())
}
