package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memory-cache/internal/common/errors"
)

func TestShared_SameInstance(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	cfg := Config{Capacity: 10, DefaultTTL: time.Minute}

	first, err := Shared(cfg)
	require.NoError(t, err)

	second, err := Shared(cfg)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestShared_ConfigMismatch(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	_, err := Shared(Config{Capacity: 10})
	require.NoError(t, err)

	_, err = Shared(Config{Capacity: 20})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
}

func TestShared_InvalidConfig(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	_, err := Shared(Config{Capacity: 0})
	assert.Error(t, err)
}

func TestResetShared(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	first, err := Shared(Config{Capacity: 10})
	require.NoError(t, err)
	first.Put(NewKey("a", "t", "k"), map[string]interface{}{"v": 1})

	ResetShared()

	// After reset a different configuration is accepted and state is gone.
	second, err := Shared(Config{Capacity: 20})
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Len())
}
