// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package models

// PreferenceRequest is the user-submitted preference vector for the
// recommendation endpoint. It is created per request and never persisted.
//
// InterestLevels, PreferredRegion, VisitDuration, and Season are accepted
// and validated but do not participate in scoring; see the recommend
// package for the scoring formula.
type PreferenceRequest struct {
	PreferredArtForms []string       `json:"preferred_art_forms" validate:"omitempty,dive,min=1,max=100"`
	AccessibilityPref string         `json:"accessibility_pref" validate:"omitempty,oneof=Easy Moderate Difficult"`
	CrowdPreference   int            `json:"crowd_preference" validate:"required,min=1,max=10"`
	InterestLevels    map[string]int `json:"interest_levels" validate:"omitempty,dive,min=1,max=10"`
	PreferredRegion   string         `json:"preferred_region" validate:"omitempty,max=100"`
	VisitDuration     int            `json:"visit_duration" validate:"omitempty,min=1,max=30"`
	Season            string         `json:"season" validate:"omitempty,max=50"`
}

// RecommendationResponse carries the ranked top destinations for a
// preference vector.
type RecommendationResponse struct {
	Recommendations []ScoredGem `json:"recommendations"`
	TotalCandidates int         `json:"total_candidates"`
}
