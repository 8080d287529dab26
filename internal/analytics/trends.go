// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package analytics derives summary views from the tourism trends table.
// All functions are pure: they read their input rows, never mutate them,
// and return rows in a deterministic order.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// Years anchoring the pandemic comparison.
const (
	covidBaselineYear = 2019
	covidTroughYear   = 2020
	covidRecoveryYear = 2022
)

// ErrInsufficientData reports that the requested aggregate cannot be
// computed from the rows provided, for example a growth rate over a year
// the table does not cover.
var ErrInsufficientData = fmt.Errorf("insufficient trend data")

// YearlyTotals is the national aggregate for one year.
type YearlyTotals struct {
	Year                  int     `json:"year"`
	DomesticTourists      int     `json:"domestic_tourists"`
	InternationalTourists int     `json:"international_tourists"`
	CulturalSiteVisits    int     `json:"cultural_site_visits"`
	RevenueMillionsINR    float64 `json:"revenue_millions_inr"`
	DomesticPercent       float64 `json:"domestic_percent"`
	InternationalPercent  float64 `json:"international_percent"`
}

// StateGrowth is the change in cultural site visits for one state between
// two years.
type StateGrowth struct {
	State         string  `json:"state"`
	FromYear      int     `json:"from_year"`
	ToYear        int     `json:"to_year"`
	FromVisits    int     `json:"from_visits"`
	ToVisits      int     `json:"to_visits"`
	GrowthRatePct float64 `json:"growth_rate_pct"`
}

// CovidImpact compares one state's cultural site visits across the
// pandemic baseline, trough, and recovery years.
type CovidImpact struct {
	State       string  `json:"state"`
	Visits2019  int     `json:"visits_2019"`
	Visits2020  int     `json:"visits_2020"`
	Visits2022  int     `json:"visits_2022"`
	DeclinePct  float64 `json:"decline_pct"`
	RecoveryPct float64 `json:"recovery_pct"`
}

// StateRatios carries the derived per-state indicators for one year:
// revenue per cultural site visit in INR and the international-to-domestic
// tourist ratio.
type StateRatios struct {
	State              string  `json:"state"`
	Year               int     `json:"year"`
	RevenuePerVisitINR float64 `json:"revenue_per_visit_inr"`
	IntlDomesticRatio  float64 `json:"intl_domestic_ratio"`
}

// YearlySummary aggregates all states per year, ascending by year.
func YearlySummary(trends []models.TourismTrend) []YearlyTotals {
	byYear := make(map[int]*YearlyTotals)
	for _, t := range trends {
		yt, ok := byYear[t.Year]
		if !ok {
			yt = &YearlyTotals{Year: t.Year}
			byYear[t.Year] = yt
		}
		yt.DomesticTourists += t.DomesticTourists
		yt.InternationalTourists += t.InternationalTourists
		yt.CulturalSiteVisits += t.CulturalSiteVisits
		yt.RevenueMillionsINR += t.RevenueMillionsINR
	}

	out := make([]YearlyTotals, 0, len(byYear))
	for _, yt := range byYear {
		if total := yt.DomesticTourists + yt.InternationalTourists; total > 0 {
			yt.DomesticPercent = float64(yt.DomesticTourists) / float64(total) * 100
			yt.InternationalPercent = float64(yt.InternationalTourists) / float64(total) * 100
		}
		out = append(out, *yt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Growth computes the cultural-site-visit growth rate for one state
// between two years present in the table.
func Growth(trends []models.TourismTrend, state string, from, to int) (StateGrowth, error) {
	fromVisits, okFrom := stateVisits(trends, state, from)
	toVisits, okTo := stateVisits(trends, state, to)
	if !okFrom || !okTo {
		return StateGrowth{}, fmt.Errorf("%w: no rows for %s in %d-%d", ErrInsufficientData, state, from, to)
	}
	if fromVisits == 0 {
		return StateGrowth{}, fmt.Errorf("%w: zero visits for %s in %d", ErrInsufficientData, state, from)
	}
	return StateGrowth{
		State:         state,
		FromYear:      from,
		ToYear:        to,
		FromVisits:    fromVisits,
		ToVisits:      toVisits,
		GrowthRatePct: float64(toVisits-fromVisits) / float64(fromVisits) * 100,
	}, nil
}

// GrowthAll computes Growth for every state in the table, sorted by growth
// rate descending. States missing either year are skipped.
func GrowthAll(trends []models.TourismTrend, from, to int) []StateGrowth {
	out := make([]StateGrowth, 0)
	for _, state := range distinctStates(trends) {
		g, err := Growth(trends, state, from, to)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GrowthRatePct > out[j].GrowthRatePct
	})
	return out
}

// CovidComparison reports per-state pandemic impact, sorted by decline
// descending. States without all three anchor years are skipped.
func CovidComparison(trends []models.TourismTrend) []CovidImpact {
	out := make([]CovidImpact, 0)
	for _, state := range distinctStates(trends) {
		baseline, okB := stateVisits(trends, state, covidBaselineYear)
		trough, okT := stateVisits(trends, state, covidTroughYear)
		recovery, okR := stateVisits(trends, state, covidRecoveryYear)
		if !okB || !okT || !okR || baseline == 0 {
			continue
		}
		out = append(out, CovidImpact{
			State:       state,
			Visits2019:  baseline,
			Visits2020:  trough,
			Visits2022:  recovery,
			DeclinePct:  float64(baseline-trough) / float64(baseline) * 100,
			RecoveryPct: float64(recovery) / float64(baseline) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeclinePct > out[j].DeclinePct
	})
	return out
}

// Ratios computes per-state revenue-per-visit and international-to-
// domestic ratios for one year, sorted by the tourist ratio descending.
// States with zero visits or zero domestic tourists are skipped.
func Ratios(trends []models.TourismTrend, year int) []StateRatios {
	out := make([]StateRatios, 0)
	for _, t := range trends {
		if t.Year != year || t.CulturalSiteVisits == 0 || t.DomesticTourists == 0 {
			continue
		}
		out = append(out, StateRatios{
			State:              t.State,
			Year:               t.Year,
			RevenuePerVisitINR: t.RevenueMillionsINR * 1_000_000 / float64(t.CulturalSiteVisits),
			IntlDomesticRatio:  float64(t.InternationalTourists) / float64(t.DomesticTourists),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IntlDomesticRatio > out[j].IntlDomesticRatio
	})
	return out
}

func stateVisits(trends []models.TourismTrend, state string, year int) (int, bool) {
	for _, t := range trends {
		if t.Year == year && strings.EqualFold(t.State, state) {
			return t.CulturalSiteVisits, true
		}
	}
	return 0, false
}

func distinctStates(trends []models.TourismTrend) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, t := range trends {
		if !seen[t.State] {
			seen[t.State] = true
			out = append(out, t.State)
		}
	}
	return out
}
