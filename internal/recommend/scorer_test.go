// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package recommend

import (
	"math"
	"testing"

	"github.com/arjunv-dev/dharohar/internal/models"
)

func testGems() []models.HiddenGem {
	return []models.HiddenGem{
		{Name: "Shekhawati Region", State: "Rajasthan", ArtForm: "Fresco Painting", Latitude: 27.6094, Longitude: 75.3025, VisitorsAnnual: 15000, Accessibility: models.AccessibilityEasy},
		{Name: "Majuli Island", State: "Assam", ArtForm: "Mask Making", Latitude: 27.0014, Longitude: 94.2300, VisitorsAnnual: 10000, Accessibility: models.AccessibilityModerate},
		{Name: "Longwa Village", State: "Nagaland", ArtForm: "Wood Carving", Latitude: 26.5693, Longitude: 95.0610, VisitorsAnnual: 2000, Accessibility: models.AccessibilityDifficult},
		{Name: "Orchha", State: "Madhya Pradesh", ArtForm: "Miniature Paintings", Latitude: 25.3518, Longitude: 78.6582, VisitorsAnnual: 35000, Accessibility: models.AccessibilityEasy},
		{Name: "Nako", State: "Himachal Pradesh", ArtForm: "Thangka Painting", Latitude: 31.8834, Longitude: 77.9333, VisitorsAnnual: 4000, Accessibility: models.AccessibilityDifficult},
		{Name: "Patan", State: "Gujarat", ArtForm: "Patola Weaving", Latitude: 23.8493, Longitude: 72.1194, VisitorsAnnual: 25000, Accessibility: models.AccessibilityEasy},
	}
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	gems := testGems()
	prefs := models.PreferenceRequest{
		PreferredArtForms: []string{"Mask Making", "Wood Carving"},
		AccessibilityPref: models.AccessibilityModerate,
		CrowdPreference:   4,
	}

	for _, g := range gems {
		first := Score(g, prefs, gems)
		second := Score(g, prefs, gems)
		if first != second {
			t.Errorf("Score(%q) not deterministic: %v vs %v", g.Name, first, second)
		}
	}
}

func TestScore_ArtFormMatchOutranksNonMatch(t *testing.T) {
	t.Parallel()

	match := models.HiddenGem{Name: "A", ArtForm: "Mask Making", VisitorsAnnual: 10000, Accessibility: models.AccessibilityModerate}
	noMatch := models.HiddenGem{Name: "B", ArtForm: "Pottery", VisitorsAnnual: 10000, Accessibility: models.AccessibilityModerate}
	all := []models.HiddenGem{match, noMatch}

	prefs := models.PreferenceRequest{
		PreferredArtForms: []string{"Mask Making"},
		AccessibilityPref: models.AccessibilityModerate,
		CrowdPreference:   10,
	}

	if got, want := Score(match, prefs, all), Score(noMatch, prefs, all); got <= want {
		t.Errorf("art form match should score strictly higher: match=%v nonmatch=%v", got, want)
	}
}

func TestScore_Terms(t *testing.T) {
	t.Parallel()

	// Two gems, max visitors 10000. Gem under test has all 10000 of them,
	// so its normalized crowd value is exactly 10.
	gem := models.HiddenGem{Name: "A", ArtForm: "Pottery", VisitorsAnnual: 10000, Accessibility: models.AccessibilityEasy}
	other := models.HiddenGem{Name: "B", ArtForm: "Weaving", VisitorsAnnual: 5000, Accessibility: models.AccessibilityDifficult}
	all := []models.HiddenGem{gem, other}

	tests := []struct {
		name  string
		prefs models.PreferenceRequest
		want  float64
	}{
		{
			name:  "crowd_only_perfect_fit",
			prefs: models.PreferenceRequest{CrowdPreference: 10},
			want:  5.0, // (10 - |10-10|)/2
		},
		{
			name:  "crowd_only_worst_fit",
			prefs: models.PreferenceRequest{CrowdPreference: 1},
			want:  0.5, // (10 - |1-10|)/2
		},
		{
			name: "all_terms",
			prefs: models.PreferenceRequest{
				PreferredArtForms: []string{"Pottery"},
				AccessibilityPref: models.AccessibilityEasy,
				CrowdPreference:   10,
			},
			want: 10.0, // 3 + 2 + 5
		},
		{
			name: "empty_art_forms_no_bonus",
			prefs: models.PreferenceRequest{
				AccessibilityPref: models.AccessibilityEasy,
				CrowdPreference:   10,
			},
			want: 7.0, // 2 + 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(gem, tt.prefs, all)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_ZeroMaxVisitors(t *testing.T) {
	t.Parallel()

	gem := models.HiddenGem{Name: "A", ArtForm: "Pottery"}
	all := []models.HiddenGem{gem, {Name: "B"}}
	prefs := models.PreferenceRequest{CrowdPreference: 5}

	if got := Score(gem, prefs, all); got != 0 {
		t.Errorf("Score with zero max visitors = %v, want 0", got)
	}
}

func TestRank_TopNDescending(t *testing.T) {
	t.Parallel()

	gems := testGems()
	prefs := models.PreferenceRequest{
		PreferredArtForms: []string{"Thangka Painting"},
		AccessibilityPref: models.AccessibilityEasy,
		CrowdPreference:   3,
	}

	ranked := Rank(gems, prefs)

	if len(ranked) > TopN {
		t.Fatalf("Rank returned %d entries, want at most %d", len(ranked), TopN)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("ranking not descending at %d: %v < %v", i, ranked[i-1].Score, ranked[i].Score)
		}
	}

	// Every returned score must be >= every excluded score.
	excluded := make(map[string]bool, len(gems))
	for _, g := range gems {
		excluded[g.Name] = true
	}
	minReturned := math.Inf(1)
	for _, sg := range ranked {
		delete(excluded, sg.Gem.Name)
		if sg.Score < minReturned {
			minReturned = sg.Score
		}
	}
	for _, g := range gems {
		if !excluded[g.Name] {
			continue
		}
		if s := Score(g, prefs, gems); s > minReturned {
			t.Errorf("excluded gem %q scores %v above returned minimum %v", g.Name, s, minReturned)
		}
	}
}

func TestRank_EmptyPreferencesStillRanks(t *testing.T) {
	t.Parallel()

	gems := testGems()
	prefs := models.PreferenceRequest{CrowdPreference: 5}

	ranked := Rank(gems, prefs)
	if len(ranked) != TopN {
		t.Fatalf("Rank with crowd-fit only returned %d entries, want %d", len(ranked), TopN)
	}
}

func TestRank_SingleGem(t *testing.T) {
	t.Parallel()

	gems := testGems()[:1]
	ranked := Rank(gems, models.PreferenceRequest{CrowdPreference: 5})

	if len(ranked) != 1 {
		t.Fatalf("Rank over one gem returned %d entries, want 1", len(ranked))
	}
	if ranked[0].Gem.Name != gems[0].Name {
		t.Errorf("ranked gem = %q, want %q", ranked[0].Gem.Name, gems[0].Name)
	}
	// Sole gem holds the visitor maximum, so its crowd value is 10.
	want := (10.0 - math.Abs(5-10)) / 2
	if math.Abs(ranked[0].Score-want) > 1e-9 {
		t.Errorf("single gem score = %v, want %v", ranked[0].Score, want)
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	t.Parallel()

	// Identical gems score identically; input order must be preserved.
	gems := []models.HiddenGem{
		{Name: "First", ArtForm: "Pottery", VisitorsAnnual: 5000},
		{Name: "Second", ArtForm: "Pottery", VisitorsAnnual: 5000},
		{Name: "Third", ArtForm: "Pottery", VisitorsAnnual: 5000},
	}

	ranked := Rank(gems, models.PreferenceRequest{CrowdPreference: 5})
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if ranked[i].Gem.Name != name {
			t.Errorf("position %d = %q, want %q", i, ranked[i].Gem.Name, name)
		}
	}
}
