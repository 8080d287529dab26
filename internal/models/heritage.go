// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package models

// Cultural significance levels used by ArtForm records.
const (
	SignificanceHigh   = "High"
	SignificanceMedium = "Medium"
	SignificanceLow    = "Low"
)

// Accessibility levels used by HiddenGem records.
const (
	AccessibilityEasy      = "Easy"
	AccessibilityModerate  = "Moderate"
	AccessibilityDifficult = "Difficult"
)

// ArtForm describes a traditional Indian art form and where it is practiced.
// Records are immutable and loaded once at startup.
type ArtForm struct {
	State                string  `json:"state"`
	ArtForm              string  `json:"art_form"`
	Type                 string  `json:"type"`
	Description          string  `json:"description"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	VisitorsAnnual       int     `json:"visitors_annual"`
	CulturalSignificance string  `json:"cultural_significance"`
}

// TourismTrend is one state-year observation of tourism volume and revenue.
type TourismTrend struct {
	Year                  int     `json:"year"`
	State                 string  `json:"state"`
	DomesticTourists      int     `json:"domestic_tourists"`
	InternationalTourists int     `json:"international_tourists"`
	CulturalSiteVisits    int     `json:"cultural_site_visits"`
	RevenueMillionsINR    float64 `json:"revenue_millions_inr"`
}

// HiddenGem is a lesser-known cultural destination. It is the unit of
// recommendation scoring and nearest-neighbor ranking.
type HiddenGem struct {
	Name            string  `json:"name"`
	State           string  `json:"state"`
	ArtForm         string  `json:"art_form"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Description     string  `json:"description"`
	VisitorsAnnual  int     `json:"visitors_annual"`
	Accessibility   string  `json:"accessibility"`
	BestTimeToVisit string  `json:"best_time_to_visit"`
}

// Initiative is a responsible-tourism program or guideline.
type Initiative struct {
	InitiativeName string  `json:"initiative_name"`
	State          string  `json:"state"`
	FocusArea      string  `json:"focus_area"`
	Description    string  `json:"description"`
	ImpactScore    float64 `json:"impact_score"`
	YearStarted    int     `json:"year_started"`
	Beneficiaries  int     `json:"beneficiaries"`
	Website        string  `json:"website"`
}

// ScoredGem pairs a gem with its preference score for ranking output.
type ScoredGem struct {
	Gem   HiddenGem `json:"gem"`
	Score float64   `json:"score"`
}

// NearbyGem pairs a gem with its great-circle distance from a reference gem.
type NearbyGem struct {
	Gem        HiddenGem `json:"gem"`
	DistanceKm float64   `json:"distance_km"`
}

// GemProfile is the detailed destination view: the gem itself plus its
// nearest neighbors by great-circle distance.
type GemProfile struct {
	Gem     HiddenGem   `json:"gem"`
	Nearest []NearbyGem `json:"nearest"`
}

// StateCount is a per-state tally used by distinct-value endpoints.
type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// TypeCount is a per-type tally of art forms.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
