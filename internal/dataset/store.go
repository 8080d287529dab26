// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package dataset provides the fixed in-memory heritage tables and the
// query operations over them. All tables are loaded once at construction
// and never mutated afterwards; accessors return copies so callers cannot
// corrupt the canonical row order, which ranking determinism depends on.
package dataset

import (
	"errors"
	"fmt"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// ErrUnavailable signals that a requested dataset failed to load or is
// empty. Callers surface it as an explicit unavailable condition rather
// than panicking on access.
var ErrUnavailable = errors.New("dataset unavailable")

// Store holds the four heritage tables plus the state boundary document.
// It is immutable after New and safe for concurrent readers.
type Store struct {
	artForms    []models.ArtForm
	trends      []models.TourismTrend
	gems        []models.HiddenGem
	initiatives []models.Initiative
	boundaries  models.GeoJSONFeatureCollection
}

// New builds the store from the embedded tables. It fails rather than
// returning a partially usable store if any table is empty.
func New() (*Store, error) {
	s := &Store{
		artForms:    artFormRows(),
		trends:      tourismTrendRows(),
		gems:        hiddenGemRows(),
		initiatives: initiativeRows(),
		boundaries:  indiaBoundaries(),
	}

	if len(s.artForms) == 0 {
		return nil, fmt.Errorf("art forms: %w", ErrUnavailable)
	}
	if len(s.trends) == 0 {
		return nil, fmt.Errorf("tourism trends: %w", ErrUnavailable)
	}
	if len(s.gems) == 0 {
		return nil, fmt.Errorf("hidden gems: %w", ErrUnavailable)
	}
	if len(s.initiatives) == 0 {
		return nil, fmt.Errorf("initiatives: %w", ErrUnavailable)
	}

	return s, nil
}

// ArtForms returns all art form records in canonical order.
func (s *Store) ArtForms() []models.ArtForm {
	out := make([]models.ArtForm, len(s.artForms))
	copy(out, s.artForms)
	return out
}

// TourismTrends returns all state-year tourism observations in canonical
// order (year ascending, then the fixed state order within each year).
func (s *Store) TourismTrends() []models.TourismTrend {
	out := make([]models.TourismTrend, len(s.trends))
	copy(out, s.trends)
	return out
}

// HiddenGems returns all hidden gem destinations in canonical order.
func (s *Store) HiddenGems() []models.HiddenGem {
	out := make([]models.HiddenGem, len(s.gems))
	copy(out, s.gems)
	return out
}

// Initiatives returns all responsible-tourism initiatives in canonical order.
func (s *Store) Initiatives() []models.Initiative {
	out := make([]models.Initiative, len(s.initiatives))
	copy(out, s.initiatives)
	return out
}

// IndiaGeoJSON returns the simplified state boundary document.
func (s *Store) IndiaGeoJSON() models.GeoJSONFeatureCollection {
	return s.boundaries
}

// Counts reports the row count of every table, for health reporting.
func (s *Store) Counts() (artForms, trends, gems, initiatives int) {
	return len(s.artForms), len(s.trends), len(s.gems), len(s.initiatives)
}
