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

// InitiativeFilter narrows the responsible-tourism table. Zero values mean
// "no constraint"; both fields match case-insensitively.
type InitiativeFilter struct {
	State     string
	FocusArea string
}

// FilterInitiatives applies the filter and orders the result by impact
// score descending. The sort is stable so equal scores keep canonical
// table order.
func (s *Store) FilterInitiatives(f InitiativeFilter) []models.Initiative {
	out := make([]models.Initiative, 0, len(s.initiatives))
	for _, in := range s.initiatives {
		if f.State != "" && !strings.EqualFold(in.State, f.State) {
			continue
		}
		if f.FocusArea != "" && !strings.EqualFold(in.FocusArea, f.FocusArea) {
			continue
		}
		out = append(out, in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ImpactScore > out[j].ImpactScore
	})
	return out
}
