// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"time"

	"github.com/arjunv-dev/dharohar/internal/cache"
	"github.com/arjunv-dev/dharohar/internal/config"
	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/logging"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler carries the shared dependencies of all HTTP handlers. The store
// is immutable, so handlers are safe for concurrent use.
type Handler struct {
	store     *dataset.Store
	cache     *cache.Cache
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler over the given store. The cache may be nil
// when response caching is disabled.
func NewHandler(store *dataset.Store, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		cache:     c,
		config:    cfg,
		startTime: time.Now(),
	}
}

// cachedResponse looks up a computed response by key. A nil cache always
// misses.
func (h *Handler) cachedResponse(key string) (interface{}, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

// storeResponse records a computed response when caching is enabled.
func (h *Handler) storeResponse(key string, value interface{}) {
	if h.cache == nil {
		return
	}
	h.cache.Set(key, value)
}

// ClearCache drops all cached responses.
func (h *Handler) ClearCache() {
	if h.cache == nil {
		return
	}
	h.cache.Clear()
	logging.Info().Msg("Response cache cleared")
}
