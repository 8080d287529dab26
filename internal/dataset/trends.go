// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import (
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// TrendFilter narrows the tourism trends table. Zero values mean "no
// constraint"; FromYear/ToYear bound the year range inclusively.
type TrendFilter struct {
	State    string
	FromYear int
	ToYear   int
}

// FilterTrends applies the filter, preserving canonical year-major order.
func (s *Store) FilterTrends(f TrendFilter) []models.TourismTrend {
	out := make([]models.TourismTrend, 0, len(s.trends))
	for _, t := range s.trends {
		if f.State != "" && !strings.EqualFold(t.State, f.State) {
			continue
		}
		if f.FromYear != 0 && t.Year < f.FromYear {
			continue
		}
		if f.ToYear != 0 && t.Year > f.ToYear {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TrendStates returns the fixed state order of the tourism table.
func (s *Store) TrendStates() []string {
	out := make([]string, len(trendStates))
	copy(out, trendStates[:])
	return out
}

// TrendYearRange reports the inclusive year span covered by the table.
func (s *Store) TrendYearRange() (min, max int) {
	if len(s.trends) == 0 {
		return 0, 0
	}
	min, max = s.trends[0].Year, s.trends[0].Year
	for _, t := range s.trends {
		if t.Year < min {
			min = t.Year
		}
		if t.Year > max {
			max = t.Year
		}
	}
	return min, max
}
