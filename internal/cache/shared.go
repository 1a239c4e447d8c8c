package cache

import (
	"fmt"
	"sync"

	"memory-cache/internal/common/errors"
)

// The shared instance is the process-wide cache the rest of the service
// uses. Construction is lazy: the first Shared call's Config wins. A
// later call with a different Config is rejected with a config error
// rather than silently ignored, so a misconfigured caller fails loudly
// instead of running against someone else's cache settings.
var (
	sharedMu  sync.Mutex
	shared    *Cache
	sharedCfg Config
)

// Shared returns the process-wide cache, constructing it from cfg on
// first use. It returns an error if cfg is invalid or conflicts with the
// configuration the instance was first built with.
func Shared(cfg Config) (*Cache, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		c, err := New(cfg)
		if err != nil {
			return nil, err
		}
		shared = c
		sharedCfg = cfg
		return shared, nil
	}

	if cfg != sharedCfg {
		return nil, errors.ConfigError(fmt.Sprintf(
			"shared cache already configured with capacity=%d default_ttl=%s; refusing capacity=%d default_ttl=%s",
			sharedCfg.Capacity, sharedCfg.DefaultTTL, cfg.Capacity, cfg.DefaultTTL))
	}
	return shared, nil
}

// ResetShared discards the shared instance so the next Shared call builds
// a fresh one. Intended for test isolation.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = nil
	sharedCfg = Config{}
}
