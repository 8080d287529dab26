// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/arjunv-dev/dharohar/internal/analytics"
	"github.com/arjunv-dev/dharohar/internal/cache"
	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/metrics"
	"github.com/arjunv-dev/dharohar/internal/models"
)

// trendsQuery is the validated query surface of the trends endpoints.
type trendsQuery struct {
	State    string `validate:"omitempty,max=100"`
	FromYear int    `validate:"omitempty,min=2000,max=2100"`
	ToYear   int    `validate:"omitempty,min=2000,max=2100"`
}

// Trends handles raw tourism trend listing
//
// @Summary List tourism trend rows
// @Description Returns per-state yearly tourism figures, optionally filtered by state and an inclusive year window
// @Tags Trends
// @Accept json
// @Produce json
// @Param state query string false "Filter by state (case-insensitive)"
// @Param from query int false "Earliest year to include"
// @Param to query int false "Latest year to include"
// @Success 200 {object} models.APIResponse{data=[]models.TourismTrend} "Trends retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/trends [get]
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	q := trendsQuery{
		State:    r.URL.Query().Get("state"),
		FromYear: getIntParam(r, "from", 0),
		ToYear:   getIntParam(r, "to", 0),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	rows := h.store.FilterTrends(dataset.TrendFilter{
		State:    q.State,
		FromYear: q.FromYear,
		ToYear:   q.ToYear,
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

// TrendsYearly handles the national yearly aggregate view
//
// @Summary Yearly visitor totals across all states
// @Description Returns per-year totals of domestic and international visitors, revenue, and heritage site visits, with domestic and international share percentages
// @Tags Trends
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]analytics.YearlyTotals} "Yearly totals retrieved successfully"
// @Router /api/v1/trends/yearly [get]
func (h *Handler) TrendsYearly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	key := cache.GenerateKey("trends:yearly", nil)
	if v, ok := h.cachedResponse(key); ok {
		metrics.CacheHitsTotal.Inc()
		totals := v.([]analytics.YearlyTotals)
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   totals,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Count:     len(totals),
				Cached:    true,
			},
		})
		return
	}
	metrics.CacheMissesTotal.Inc()

	totals := analytics.YearlySummary(h.store.TourismTrends())
	h.storeResponse(key, totals)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   totals,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(totals),
		},
	})
}

// TrendsGrowth handles visitor growth queries
//
// @Summary Visitor growth between two years
// @Description Returns the total-visitor growth rate between two years for one state, or for every state ordered by growth rate when no state is given. Defaults to the full dataset year range.
// @Tags Trends
// @Accept json
// @Produce json
// @Param state query string false "Limit growth to one state (case-insensitive)"
// @Param from query int false "Baseline year (defaults to earliest in dataset)"
// @Param to query int false "Comparison year (defaults to latest in dataset)"
// @Success 200 {object} models.APIResponse{data=[]analytics.StateGrowth} "Growth rates retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Failure 404 {object} models.APIResponse "No trend rows for the requested state or years"
// @Router /api/v1/trends/growth [get]
func (h *Handler) TrendsGrowth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	minYear, maxYear := h.store.TrendYearRange()
	q := trendsQuery{
		State:    r.URL.Query().Get("state"),
		FromYear: getIntParam(r, "from", minYear),
		ToYear:   getIntParam(r, "to", maxYear),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if q.FromYear >= q.ToYear {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "'from' year must be earlier than 'to' year", nil)
		return
	}

	trends := h.store.TourismTrends()

	if q.State != "" {
		growth, err := analytics.Growth(trends, q.State, q.FromYear, q.ToYear)
		if err != nil {
			if errors.Is(err, analytics.ErrInsufficientData) {
				respondError(w, http.StatusNotFound, "NOT_FOUND", "No trend data for the requested state and years", err)
				return
			}
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute growth", err)
			return
		}
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   []analytics.StateGrowth{growth},
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Count:     1,
			},
		})
		return
	}

	growth := analytics.GrowthAll(trends, q.FromYear, q.ToYear)
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   growth,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(growth),
		},
	})
}

// TrendsCovid handles the pandemic impact comparison
//
// @Summary COVID impact and recovery by state
// @Description Compares 2019 baseline visits against the 2020 trough and 2022 recovery for each state, ordered by steepest decline
// @Tags Trends
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]analytics.CovidImpact} "Impact comparison retrieved successfully"
// @Router /api/v1/trends/covid [get]
func (h *Handler) TrendsCovid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	key := cache.GenerateKey("trends:covid", nil)
	if v, ok := h.cachedResponse(key); ok {
		metrics.CacheHitsTotal.Inc()
		impact := v.([]analytics.CovidImpact)
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   impact,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Count:     len(impact),
				Cached:    true,
			},
		})
		return
	}
	metrics.CacheMissesTotal.Inc()

	impact := analytics.CovidComparison(h.store.TourismTrends())
	h.storeResponse(key, impact)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   impact,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(impact),
		},
	})
}

// TrendsRatios handles the per-state revenue and visitor-mix ratios
//
// @Summary Revenue per visitor and international share by state
// @Description Returns revenue per visitor in INR and the international-to-domestic visitor ratio per state for one year, ordered by international share. Defaults to the latest year in the dataset.
// @Tags Trends
// @Accept json
// @Produce json
// @Param year query int false "Year to compute ratios for (defaults to latest)"
// @Success 200 {object} models.APIResponse{data=[]analytics.StateRatios} "Ratios retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Router /api/v1/trends/ratios [get]
func (h *Handler) TrendsRatios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	_, maxYear := h.store.TrendYearRange()
	year := getIntParam(r, "year", maxYear)
	if year < 2000 || year > 2100 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "'year' must be between 2000 and 2100", nil)
		return
	}

	key := cache.GenerateKey("trends:ratios", year)
	if v, ok := h.cachedResponse(key); ok {
		metrics.CacheHitsTotal.Inc()
		ratios := v.([]analytics.StateRatios)
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   ratios,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Count:     len(ratios),
				Cached:    true,
			},
		})
		return
	}
	metrics.CacheMissesTotal.Inc()

	ratios := analytics.Ratios(h.store.TourismTrends(), year)
	h.storeResponse(key, ratios)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   ratios,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Count:     len(ratios),
		},
	})
}
