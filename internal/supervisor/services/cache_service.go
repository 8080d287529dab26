// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package services

import (
	"context"
	"time"

	"github.com/arjunv-dev/dharohar/internal/cache"
	"github.com/arjunv-dev/dharohar/internal/logging"
)

// defaultStatsInterval is how often cache statistics are logged.
const defaultStatsInterval = 10 * time.Minute

// CacheMaintenanceService periodically logs response cache statistics
// and stops the cache's cleanup loop when the tree shuts down.
type CacheMaintenanceService struct {
	cache    *cache.Cache
	interval time.Duration
}

// NewCacheMaintenanceService creates a maintenance service over the given
// cache.
func NewCacheMaintenanceService(c *cache.Cache, interval time.Duration) *CacheMaintenanceService {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &CacheMaintenanceService{
		cache:    c,
		interval: interval,
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := s.cache.GetStats()
			logging.Debug().
				Int64("hits", stats.Hits).
				Int64("misses", stats.Misses).
				Int64("evictions", stats.Evictions).
				Int64("keys", stats.TotalKeys).
				Msg("Response cache stats")

		case <-ctx.Done():
			s.cache.Stop()
			return ctx.Err()
		}
	}
}

// String implements fmt.Stringer for suture's log messages.
func (s *CacheMaintenanceService) String() string {
	return "cache-maintenance"
}
