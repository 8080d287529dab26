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

// artFormsQuery is the validated query surface of the art forms endpoint.
type artFormsQuery struct {
	State string `validate:"omitempty,max=100"`
	Type  string `validate:"omitempty,max=100"`
	Query string `validate:"omitempty,max=200"`
	Sort  string `validate:"omitempty,oneof=name visitors significance"`
	Limit int    `validate:"min=0,max=100"`
}

// ArtForms handles art form listing with filters, search, and sorting
//
// @Summary List traditional art forms
// @Description Returns art form records, optionally filtered by state or type, searched by substring, and sorted by name, annual visitors, or cultural significance
// @Tags ArtForms
// @Accept json
// @Produce json
// @Param state query string false "Filter by state (case-insensitive)"
// @Param type query string false "Filter by art form type (case-insensitive)"
// @Param q query string false "Substring search across art form, type, state, and description"
// @Param sort query string false "Sort order" Enums(name, visitors, significance)
// @Param limit query int false "Maximum rows to return (max 100)"
// @Success 200 {object} models.APIResponse{data=[]models.ArtForm} "Art forms retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/artforms [get]
func (h *Handler) ArtForms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	q := artFormsQuery{
		State: r.URL.Query().Get("state"),
		Type:  r.URL.Query().Get("type"),
		Query: r.URL.Query().Get("q"),
		Sort:  r.URL.Query().Get("sort"),
		Limit: getIntParam(r, "limit", 0),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	rows := h.store.FilterArtForms(dataset.ArtFormFilter{
		State: q.State,
		Type:  q.Type,
		Query: q.Query,
		Sort:  q.Sort,
		Limit: q.Limit,
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

// ArtFormStates handles the distinct state listing
//
// @Summary List states with art form counts
// @Description Returns the distinct states in the art forms dataset with the number of recorded art forms per state
// @Tags ArtForms
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.StateCount} "States retrieved successfully"
// @Router /api/v1/artforms/states [get]
func (h *Handler) ArtFormStates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	states := h.store.ArtFormStates()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   states,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(states),
		},
	})
}

// ArtFormTypes handles the distinct type listing
//
// @Summary List art form types with counts
// @Description Returns the distinct art form types in the dataset with per-type counts
// @Tags ArtForms
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TypeCount} "Types retrieved successfully"
// @Router /api/v1/artforms/types [get]
func (h *Handler) ArtFormTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	types := h.store.ArtFormTypes()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   types,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(types),
		},
	})
}
