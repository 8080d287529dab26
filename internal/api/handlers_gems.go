// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/metrics"
	"github.com/arjunv-dev/dharohar/internal/models"
	"github.com/arjunv-dev/dharohar/internal/recommend"
)

// gemsQuery is the validated query surface of the gems listing.
type gemsQuery struct {
	State         string `validate:"omitempty,max=100"`
	Accessibility string `validate:"omitempty,oneof=Easy Moderate Difficult"`
	Query         string `validate:"omitempty,max=200"`
}

// Gems handles hidden gem listing
//
// @Summary List hidden gems
// @Description Returns lesser-known heritage destinations, optionally filtered by state or accessibility and searched by substring
// @Tags Gems
// @Accept json
// @Produce json
// @Param state query string false "Filter by state (case-insensitive)"
// @Param accessibility query string false "Filter by accessibility" Enums(Easy, Moderate, Difficult)
// @Param q query string false "Substring search across name, state, and description"
// @Success 200 {object} models.APIResponse{data=[]models.HiddenGem} "Gems retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/gems [get]
func (h *Handler) Gems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	q := gemsQuery{
		State:         r.URL.Query().Get("state"),
		Accessibility: r.URL.Query().Get("accessibility"),
		Query:         r.URL.Query().Get("q"),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	rows := h.store.FilterGems(dataset.GemFilter{
		State:         q.State,
		Accessibility: q.Accessibility,
		Query:         q.Query,
	})

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   rows,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(rows),
		},
	})
}

// GemProfile handles the single-gem detail view
//
// @Summary Hidden gem profile with nearby destinations
// @Description Returns one gem by name together with its three nearest fellow gems by great-circle distance
// @Tags Gems
// @Accept json
// @Produce json
// @Param name path string true "Gem name (case-insensitive)"
// @Success 200 {object} models.APIResponse{data=models.GemProfile} "Gem retrieved successfully"
// @Failure 404 {object} models.APIResponse "Unknown gem name"
// @Router /api/v1/gems/{name} [get]
func (h *Handler) GemProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	name := chi.URLParam(r, "name")
	gem, ok := h.store.GemByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("No hidden gem named %q", sanitizeLogValue(name)), nil)
		return
	}

	nearest, err := recommend.Nearest(gem, h.store.HiddenGems(), recommend.DefaultNearest)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rank nearby gems", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.GemProfile{
			Gem:     gem,
			Nearest: nearest,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     1,
		},
	})
}

// GemNearest handles nearest-neighbour queries for one gem
//
// @Summary Nearest gems to a given gem
// @Description Returns the k nearest hidden gems to the named gem by haversine distance, nearest first. The origin gem is excluded from the result.
// @Tags Gems
// @Accept json
// @Produce json
// @Param name path string true "Gem name (case-insensitive)"
// @Param k query int false "Number of neighbours to return (default 3)"
// @Success 200 {object} models.APIResponse{data=[]models.NearbyGem} "Neighbours retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid k parameter"
// @Failure 404 {object} models.APIResponse "Unknown gem name"
// @Router /api/v1/gems/{name}/nearest [get]
func (h *Handler) GemNearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	maxK := h.config.Recommend.MaxNearest
	k := getIntParam(r, "k", recommend.DefaultNearest)
	if k < 1 || k > maxK {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("'k' must be between 1 and %d", maxK), nil)
		return
	}

	name := chi.URLParam(r, "name")
	gem, ok := h.store.GemByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("No hidden gem named %q", sanitizeLogValue(name)), nil)
		return
	}

	nearest, err := recommend.Nearest(gem, h.store.HiddenGems(), k)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rank nearby gems", err)
		return
	}
	metrics.NearestQueriesTotal.Inc()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   nearest,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(nearest),
		},
	})
}
