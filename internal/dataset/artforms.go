// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import (
	"sort"
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// Sort orders accepted by FilterArtForms.
const (
	SortByName         = "name"
	SortByVisitors     = "visitors"
	SortBySignificance = "significance"
)

// ArtFormFilter narrows and orders the art forms table. Zero values mean
// "no constraint". State and Type match case-insensitively; Query is a
// case-insensitive substring search across art form, type, state, and
// description.
type ArtFormFilter struct {
	State string
	Type  string
	Query string
	Sort  string
	Limit int
}

// significanceRank maps cultural significance to a sortable weight.
var significanceRank = map[string]int{
	models.SignificanceHigh:   3,
	models.SignificanceMedium: 2,
	models.SignificanceLow:    1,
}

// FilterArtForms applies the filter and returns matching rows. Sorting is
// stable so equal keys keep canonical table order.
func (s *Store) FilterArtForms(f ArtFormFilter) []models.ArtForm {
	out := make([]models.ArtForm, 0, len(s.artForms))
	for _, af := range s.artForms {
		if f.State != "" && !strings.EqualFold(af.State, f.State) {
			continue
		}
		if f.Type != "" && !strings.EqualFold(af.Type, f.Type) {
			continue
		}
		if f.Query != "" && !artFormMatches(af, f.Query) {
			continue
		}
		out = append(out, af)
	}

	switch f.Sort {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ArtForm < out[j].ArtForm
		})
	case SortByVisitors:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].VisitorsAnnual > out[j].VisitorsAnnual
		})
	case SortBySignificance:
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := significanceRank[out[i].CulturalSignificance], significanceRank[out[j].CulturalSignificance]
			if ri != rj {
				return ri > rj
			}
			return out[i].ArtForm < out[j].ArtForm
		})
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func artFormMatches(af models.ArtForm, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(af.ArtForm), q) ||
		strings.Contains(strings.ToLower(af.Type), q) ||
		strings.Contains(strings.ToLower(af.State), q) ||
		strings.Contains(strings.ToLower(af.Description), q)
}

// ArtFormStates returns the distinct states with their art form counts,
// ordered alphabetically.
func (s *Store) ArtFormStates() []models.StateCount {
	counts := make(map[string]int)
	for _, af := range s.artForms {
		counts[af.State]++
	}
	out := make([]models.StateCount, 0, len(counts))
	for state, n := range counts {
		out = append(out, models.StateCount{State: state, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

// ArtFormTypes returns the distinct art form types with counts, ordered
// alphabetically.
func (s *Store) ArtFormTypes() []models.TypeCount {
	counts := make(map[string]int)
	for _, af := range s.artForms {
		counts[af.Type]++
	}
	out := make([]models.TypeCount, 0, len(counts))
	for typ, n := range counts {
		out = append(out, models.TypeCount{Type: typ, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
