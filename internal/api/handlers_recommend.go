// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/arjunv-dev/dharohar/internal/cache"
	"github.com/arjunv-dev/dharohar/internal/metrics"
	"github.com/arjunv-dev/dharohar/internal/models"
	"github.com/arjunv-dev/dharohar/internal/recommend"
)

// Recommendations handles preference-based destination scoring
//
// @Summary Recommend hidden gems for a preference vector
// @Description Scores every hidden gem against the submitted preferences and returns the top five, highest score first. Art form matches, accessibility matches, and crowd tolerance drive the score.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.PreferenceRequest true "Visitor preferences"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResponse} "Recommendations computed successfully"
// @Failure 400 {object} models.APIResponse "Malformed body or invalid preferences"
// @Router /api/v1/recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var prefs models.PreferenceRequest
	if err := decodeJSONBody(r, &prefs); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&prefs); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	gems := h.store.HiddenGems()
	metrics.RecommendationsTotal.Inc()

	key := cache.GenerateKey("recommendations", prefs)
	if v, ok := h.cachedResponse(key); ok {
		metrics.CacheHitsTotal.Inc()
		resp := v.(models.RecommendationResponse)
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   resp,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Count:     len(resp.Recommendations),
				Cached:    true,
			},
		})
		return
	}
	metrics.CacheMissesTotal.Inc()

	resp := models.RecommendationResponse{
		Recommendations: recommend.Rank(gems, prefs),
		TotalCandidates: len(gems),
	}
	h.storeResponse(key, resp)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(resp.Recommendations),
		},
	})
}
