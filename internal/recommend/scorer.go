// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

const (
	// artFormPoints is awarded when the gem's art form is in the
	// preferred set.
	artFormPoints = 3.0

	// accessibilityPoints is awarded on an exact accessibility match.
	// Adjacent levels get no partial credit.
	accessibilityPoints = 2.0

	// crowdScaleMax is the upper bound of the normalized visitor scale.
	crowdScaleMax = 10.0

	// TopN is the number of destinations a ranking returns.
	TopN = 5
)

// Score computes the preference score of one gem. The full gem set is
// needed to normalize the crowd-fit term against the busiest destination.
// When the set has no visitors at all the crowd term contributes nothing
// rather than dividing by zero.
func Score(gem models.HiddenGem, prefs models.PreferenceRequest, all []models.HiddenGem) float64 {
	score := 0.0

	if len(prefs.PreferredArtForms) > 0 && containsFold(prefs.PreferredArtForms, gem.ArtForm) {
		score += artFormPoints
	}

	if gem.Accessibility == prefs.AccessibilityPref {
		score += accessibilityPoints
	}

	if max := maxVisitors(all); max > 0 {
		normalized := float64(gem.VisitorsAnnual) / float64(max) * crowdScaleMax
		crowdScore := crowdScaleMax - math.Abs(float64(prefs.CrowdPreference)-normalized)
		score += crowdScore / 2
	}

	return score
}

// Rank scores every gem against the preferences and returns the top TopN
// by score descending. The sort is stable, so equal scores keep the input
// order and repeated calls produce identical rankings.
func Rank(all []models.HiddenGem, prefs models.PreferenceRequest) []models.ScoredGem {
	scored := make([]models.ScoredGem, 0, len(all))
	for _, gem := range all {
		scored = append(scored, models.ScoredGem{
			Gem:   gem,
			Score: Score(gem, prefs, all),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > TopN {
		scored = scored[:TopN]
	}
	return scored
}

func maxVisitors(gems []models.HiddenGem) int {
	max := 0
	for _, g := range gems {
		if g.VisitorsAnnual > max {
			max = g.VisitorsAnnual
		}
	}
	return max
}

func containsFold(set []string, want string) bool {
	for _, s := range set {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
