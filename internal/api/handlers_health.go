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

// Health handles the full health report
//
// @Summary Health check
// @Description Returns service health with per-dataset row counts and uptime
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is healthy"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "One or more datasets are unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	artForms, trends, gems, initiatives := h.store.Counts()
	loaded := artForms > 0 && trends > 0 && gems > 0 && initiatives > 0

	status := "healthy"
	httpStatus := http.StatusOK
	if !loaded {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	respondJSON(w, httpStatus, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:         status,
			Version:        Version,
			DatasetsLoaded: loaded,
			ArtForms:       artForms,
			TourismTrends:  trends,
			HiddenGems:     gems,
			Initiatives:    initiatives,
			Uptime:         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles the liveness probe
//
// @Summary Liveness probe
// @Description Returns 200 whenever the process is serving requests
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "alive"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles the readiness probe
//
// @Summary Readiness probe
// @Description Returns 200 once every dataset has loaded with at least one row, 503 otherwise
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Datasets not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	artForms, trends, gems, initiatives := h.store.Counts()
	if artForms == 0 || trends == 0 || gems == 0 || initiatives == 0 {
		respondError(w, http.StatusServiceUnavailable, "DATASET_UNAVAILABLE", "One or more datasets are empty", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "ready"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
