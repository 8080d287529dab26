// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/arjunv-dev/dharohar/internal/config"
	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/logging"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	logging.Init(logging.Config{})

	store, err := dataset.New()
	if err != nil {
		t.Fatalf("Failed to load datasets: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return NewHandler(store, nil, cfg)
}

// withURLParam injects a chi URL parameter into the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response
}

func TestArtForms(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artforms", nil)
	rec := httptest.NewRecorder()
	h.ArtForms(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	if response["status"] != "success" {
		t.Errorf("Expected status 'success', got %v", response["status"])
	}
	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatal("Expected data to be an array")
	}
	if len(data) != 24 {
		t.Errorf("Expected 24 art forms, got %d", len(data))
	}
}

func TestArtForms_FilterByState(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artforms?state=Kerala", nil)
	rec := httptest.NewRecorder()
	h.ArtForms(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) == 0 {
		t.Fatal("Expected at least one Kerala art form")
	}
	for _, item := range data {
		row := item.(map[string]interface{})
		if row["state"] != "Kerala" {
			t.Errorf("Expected only Kerala rows, got %v", row["state"])
		}
	}
}

func TestArtForms_InvalidSort(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artforms?sort=popularity", nil)
	rec := httptest.NewRecorder()
	h.ArtForms(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	if response["status"] != "error" {
		t.Errorf("Expected status 'error', got %v", response["status"])
	}
}

func TestArtForms_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/artforms", nil)
	rec := httptest.NewRecorder()
	h.ArtForms(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestArtFormStates(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artforms/states", nil)
	rec := httptest.NewRecorder()
	h.ArtFormStates(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) == 0 {
		t.Fatal("Expected at least one state")
	}
}

func TestTrends_YearWindow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends?state=Rajasthan&from=2019&to=2020", nil)
	rec := httptest.NewRecorder()
	h.Trends(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("Expected 2 rows for Rajasthan 2019-2020, got %d", len(data))
	}
}

func TestTrendsYearly(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends/yearly", nil)
	rec := httptest.NewRecorder()
	h.TrendsYearly(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) != 8 {
		t.Fatalf("Expected 8 yearly totals for 2015-2022, got %d", len(data))
	}
}

func TestTrendsGrowth_AllStates(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends/growth", nil)
	rec := httptest.NewRecorder()
	h.TrendsGrowth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) != 10 {
		t.Fatalf("Expected growth for 10 states, got %d", len(data))
	}
}

func TestTrendsGrowth_UnknownState(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends/growth?state=Atlantis", nil)
	rec := httptest.NewRecorder()
	h.TrendsGrowth(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestTrendsGrowth_InvertedYears(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends/growth?from=2022&to=2015", nil)
	rec := httptest.NewRecorder()
	h.TrendsGrowth(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestTrendsCovid(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends/covid", nil)
	rec := httptest.NewRecorder()
	h.TrendsCovid(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) != 10 {
		t.Fatalf("Expected COVID impact for 10 states, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["decline_pct"].(float64) <= 0 {
		t.Errorf("Expected a positive 2020 decline, got %v", first["decline_pct"])
	}
}

func TestGems_FilterByAccessibility(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gems?accessibility=Easy", nil)
	rec := httptest.NewRecorder()
	h.Gems(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) == 0 {
		t.Fatal("Expected at least one Easy gem")
	}
	for _, item := range data {
		row := item.(map[string]interface{})
		if row["accessibility"] != "Easy" {
			t.Errorf("Expected only Easy gems, got %v", row["accessibility"])
		}
	}
}

func TestGems_InvalidAccessibility(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gems?accessibility=Impossible", nil)
	rec := httptest.NewRecorder()
	h.Gems(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGemProfile(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gems/Shekhawati%20Region", nil)
	req = withURLParam(req, "name", "Shekhawati Region")
	rec := httptest.NewRecorder()
	h.GemProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	gem := data["gem"].(map[string]interface{})
	if gem["name"] != "Shekhawati Region" {
		t.Errorf("Expected gem 'Shekhawati Region', got %v", gem["name"])
	}
	nearest := data["nearest"].([]interface{})
	if len(nearest) != 3 {
		t.Fatalf("Expected 3 nearest gems, got %d", len(nearest))
	}
	for _, item := range nearest {
		n := item.(map[string]interface{})
		ng := n["gem"].(map[string]interface{})
		if ng["name"] == "Shekhawati Region" {
			t.Error("Nearest list must not include the origin gem")
		}
	}
}

func TestGemProfile_Unknown(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gems/Nowhere", nil)
	req = withURLParam(req, "name", "Nowhere")
	rec := httptest.NewRecorder()
	h.GemProfile(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	errObj := response["error"].(map[string]interface{})
	if errObj["code"] != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %v", errObj["code"])
	}
}

func TestGemNearest_AscendingDistances(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gems/Majuli%20Island/nearest?k=5", nil)
	req = withURLParam(req, "name", "Majuli Island")
	rec := httptest.NewRecorder()
	h.GemNearest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) != 5 {
		t.Fatalf("Expected 5 neighbours, got %d", len(data))
	}
	prev := -1.0
	for _, item := range data {
		n := item.(map[string]interface{})
		d := n["distance_km"].(float64)
		if d < prev {
			t.Fatalf("Distances not ascending: %f after %f", d, prev)
		}
		prev = d
	}
}

func TestGemNearest_InvalidK(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	for _, k := range []string{"0", "-1", "11"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/gems/Majuli%20Island/nearest?k="+k, nil)
		req = withURLParam(req, "name", "Majuli Island")
		rec := httptest.NewRecorder()
		h.GemNearest(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("k=%s: expected status %d, got %d", k, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	body := `{"preferred_art_forms":["Fresco Painting"],"accessibility_pref":"Easy","crowd_preference":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Recommendations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	recs := data["recommendations"].([]interface{})
	if len(recs) != 5 {
		t.Fatalf("Expected 5 recommendations, got %d", len(recs))
	}
	if int(data["total_candidates"].(float64)) != 20 {
		t.Errorf("Expected 20 candidates, got %v", data["total_candidates"])
	}

	prev := -1.0
	for i, item := range recs {
		scored := item.(map[string]interface{})
		score := scored["score"].(float64)
		if i > 0 && score > prev {
			t.Fatalf("Scores not descending: %f after %f", score, prev)
		}
		prev = score
	}
}

func TestRecommendations_MissingCrowdPreference(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"accessibility_pref":"Easy"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Recommendations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	errObj := response["error"].(map[string]interface{})
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %v", errObj["code"])
	}
}

func TestRecommendations_MalformedBody(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"crowd_preference":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Recommendations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestInitiatives_FilterByFocusArea(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/initiatives?focus_area=Eco-Tourism", nil)
	rec := httptest.NewRecorder()
	h.Initiatives(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].([]interface{})
	if len(data) == 0 {
		t.Fatal("Expected at least one Eco-Tourism initiative")
	}
	for _, item := range data {
		row := item.(map[string]interface{})
		if row["focus_area"] != "Eco-Tourism" {
			t.Errorf("Expected only Eco-Tourism rows, got %v", row["focus_area"])
		}
	}
}

func TestIndiaGeoJSON(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/india", nil)
	rec := httptest.NewRecorder()
	h.IndiaGeoJSON(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	if data["type"] != "FeatureCollection" {
		t.Errorf("Expected FeatureCollection, got %v", data["type"])
	}
	features := data["features"].([]interface{})
	if len(features) == 0 {
		t.Fatal("Expected at least one feature")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	if data["status"] != "healthy" {
		t.Errorf("Expected healthy, got %v", data["status"])
	}
	if data["datasets_loaded"] != true {
		t.Error("Expected datasets_loaded to be true")
	}
	if int(data["art_forms"].(float64)) != 24 {
		t.Errorf("Expected 24 art forms, got %v", data["art_forms"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	h.HealthReady(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
