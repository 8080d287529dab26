// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/models"
)

// initiativesQuery is the validated query surface of the initiatives
// endpoint.
type initiativesQuery struct {
	State     string `validate:"omitempty,max=100"`
	FocusArea string `validate:"omitempty,max=100"`
}

// Initiatives handles responsible tourism initiative listing
//
// @Summary List responsible tourism initiatives
// @Description Returns community and government initiatives, ordered by impact score descending, optionally filtered by state or focus area
// @Tags Initiatives
// @Accept json
// @Produce json
// @Param state query string false "Filter by state (case-insensitive)"
// @Param focus_area query string false "Filter by focus area (case-insensitive)"
// @Success 200 {object} models.APIResponse{data=[]models.Initiative} "Initiatives retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/initiatives [get]
func (h *Handler) Initiatives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	q := initiativesQuery{
		State:     r.URL.Query().Get("state"),
		FocusArea: r.URL.Query().Get("focus_area"),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	rows := h.store.FilterInitiatives(dataset.InitiativeFilter{
		State:     q.State,
		FocusArea: q.FocusArea,
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
