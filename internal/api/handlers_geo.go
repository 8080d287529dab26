// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// IndiaGeoJSON handles the state boundary map layer
//
// @Summary Simplified India state boundaries
// @Description Returns a GeoJSON FeatureCollection of simplified state polygons for map rendering
// @Tags Geo
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GeoJSONFeatureCollection} "Boundaries retrieved successfully"
// @Router /api/v1/geo/india [get]
func (h *Handler) IndiaGeoJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	fc := h.store.IndiaGeoJSON()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   fc,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(fc.Features),
		},
	})
}
