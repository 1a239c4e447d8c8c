// Package maintenance runs scheduled expired-entry sweeps against the
// cache. The cache itself never reclaims expired entries in the
// background; this scheduler is the explicit external caller that does.
package maintenance

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"memory-cache/internal/cache"
	"memory-cache/internal/common/logging"
)

// Scheduler invokes CleanupExpired on a cron schedule.
type Scheduler struct {
	cache  *cache.Cache
	spec   string
	logger logging.Logger
	cron   *cron.Cron
}

// NewScheduler builds a scheduler for the given cache. An empty spec
// disables scheduled sweeps; lazy expiration still applies on access.
func NewScheduler(c *cache.Cache, spec string, logger logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Scheduler{
		cache:  c,
		spec:   spec,
		logger: logger.WithFields(logging.String("component", "maintenance")),
	}
}

// Start begins scheduled sweeps. It is a no-op when no spec is set.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.logger.Info("cache cleanup schedule disabled")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.spec, err)
	}
	s.cron.Start()

	s.logger.Info("cache cleanup scheduled", logging.String("spec", s.spec))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sweep() {
	removed := s.cache.CleanupExpired()
	if removed > 0 {
		s.logger.Info("expired cache entries removed", logging.Int("removed", removed))
	} else {
		s.logger.Debug("cache sweep found no expired entries")
	}
}
