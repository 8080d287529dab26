// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import (
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// GemFilter narrows the hidden gems table. Zero values mean "no
// constraint". State and Accessibility match case-insensitively; Query is
// a case-insensitive substring search across name, state, art form, and
// description.
type GemFilter struct {
	State         string
	Accessibility string
	Query         string
}

// FilterGems applies the filter, preserving canonical row order.
func (s *Store) FilterGems(f GemFilter) []models.HiddenGem {
	out := make([]models.HiddenGem, 0, len(s.gems))
	for _, g := range s.gems {
		if f.State != "" && !strings.EqualFold(g.State, f.State) {
			continue
		}
		if f.Accessibility != "" && !strings.EqualFold(g.Accessibility, f.Accessibility) {
			continue
		}
		if f.Query != "" && !gemMatches(g, f.Query) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func gemMatches(g models.HiddenGem, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.State), q) ||
		strings.Contains(strings.ToLower(g.ArtForm), q) ||
		strings.Contains(strings.ToLower(g.Description), q)
}

// GemByName looks up a gem by its exact name, case-insensitively.
func (s *Store) GemByName(name string) (models.HiddenGem, bool) {
	for _, g := range s.gems {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return models.HiddenGem{}, false
}
