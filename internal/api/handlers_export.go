// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arjunv-dev/dharohar/internal/metrics"
)

// Dataset names accepted by the CSV export endpoint.
const (
	exportArtForms    = "artforms"
	exportTrends      = "trends"
	exportGems        = "gems"
	exportInitiatives = "initiatives"
)

// ExportCSV handles full-dataset CSV downloads
//
// @Summary Export a dataset as CSV
// @Description Streams one of the four datasets as an RFC 4180 CSV attachment with a header row and a timestamped filename
// @Tags Export
// @Accept json
// @Produce text/csv
// @Param dataset path string true "Dataset to export" Enums(artforms, trends, gems, initiatives)
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} models.APIResponse "Unknown dataset name"
// @Router /api/v1/export/{dataset}.csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	name := strings.TrimSuffix(chi.URLParam(r, "dataset"), ".csv")

	var body string
	switch name {
	case exportArtForms:
		body = h.artFormsCSV()
	case exportTrends:
		body = h.trendsCSV()
	case exportGems:
		body = h.gemsCSV()
	case exportInitiatives:
		body = h.initiativesCSV()
	default:
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown dataset %q, expected one of: artforms, trends, gems, initiatives", sanitizeLogValue(name)), nil)
		return
	}

	metrics.CSVExportsTotal.WithLabelValues(name).Inc()

	filename := fmt.Sprintf("dharohar_%s_%s.csv", name, time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) artFormsCSV() string {
	var b strings.Builder
	b.WriteString(buildCSVRow("state", "art_form", "type", "description", "latitude", "longitude", "visitors_annual", "cultural_significance"))
	for _, af := range h.store.ArtForms() {
		b.WriteString(buildCSVRow(
			escapeCSV(af.State),
			escapeCSV(af.ArtForm),
			escapeCSV(af.Type),
			escapeCSV(af.Description),
			formatFloat(af.Latitude),
			formatFloat(af.Longitude),
			strconv.Itoa(af.VisitorsAnnual),
			escapeCSV(af.CulturalSignificance),
		))
	}
	return b.String()
}

func (h *Handler) trendsCSV() string {
	var b strings.Builder
	b.WriteString(buildCSVRow("year", "state", "domestic_tourists", "international_tourists", "cultural_site_visits", "revenue_millions_inr"))
	for _, t := range h.store.TourismTrends() {
		b.WriteString(buildCSVRow(
			strconv.Itoa(t.Year),
			escapeCSV(t.State),
			strconv.Itoa(t.DomesticTourists),
			strconv.Itoa(t.InternationalTourists),
			strconv.Itoa(t.CulturalSiteVisits),
			formatFloat(t.RevenueMillionsINR),
		))
	}
	return b.String()
}

func (h *Handler) gemsCSV() string {
	var b strings.Builder
	b.WriteString(buildCSVRow("name", "state", "art_form", "latitude", "longitude", "description", "visitors_annual", "accessibility", "best_time_to_visit"))
	for _, g := range h.store.HiddenGems() {
		b.WriteString(buildCSVRow(
			escapeCSV(g.Name),
			escapeCSV(g.State),
			escapeCSV(g.ArtForm),
			formatFloat(g.Latitude),
			formatFloat(g.Longitude),
			escapeCSV(g.Description),
			strconv.Itoa(g.VisitorsAnnual),
			escapeCSV(g.Accessibility),
			escapeCSV(g.BestTimeToVisit),
		))
	}
	return b.String()
}

func (h *Handler) initiativesCSV() string {
	var b strings.Builder
	b.WriteString(buildCSVRow("initiative_name", "state", "focus_area", "description", "impact_score", "year_started", "beneficiaries", "website"))
	for _, in := range h.store.Initiatives() {
		b.WriteString(buildCSVRow(
			escapeCSV(in.InitiativeName),
			escapeCSV(in.State),
			escapeCSV(in.FocusArea),
			escapeCSV(in.Description),
			formatFloat(in.ImpactScore),
			strconv.Itoa(in.YearStarted),
			strconv.Itoa(in.Beneficiaries),
			escapeCSV(in.Website),
		))
	}
	return b.String()
}

// formatFloat renders a float without trailing zeros, matching the source
// dataset notation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
