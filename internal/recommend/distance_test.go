// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package recommend

import (
	"errors"
	"math"
	"testing"

	"github.com/arjunv-dev/dharohar/internal/models"
)

func TestHaversine_KnownDistance(t *testing.T) {
	t.Parallel()

	// Jaipur to Ahmedabad is roughly 530 km great-circle.
	got := Haversine(26.9124, 75.7873, 23.0225, 72.5714)
	if got < 500 || got > 560 {
		t.Errorf("Haversine(Jaipur, Ahmedabad) = %v km, want ~530", got)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{26.9124, 75.7873, 10.8505, 76.2711},
		{34.6989, 77.5619, 9.1550, 79.3963},
		{-45.0, -170.0, 60.0, 120.0},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Haversine not symmetric: %v vs %v for %v", ab, ba, p)
		}
	}
}

func TestHaversine_SelfDistanceZero(t *testing.T) {
	t.Parallel()

	if got := Haversine(27.5949, 93.8290, 27.5949, 93.8290); got != 0 {
		t.Errorf("self distance = %v, want 0", got)
	}
}

func TestNearest_ExcludesOriginAndSortsAscending(t *testing.T) {
	t.Parallel()

	gems := testGems()
	origin := gems[0]

	nearby, err := Nearest(origin, gems, DefaultNearest)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if len(nearby) != DefaultNearest {
		t.Fatalf("Nearest returned %d entries, want %d", len(nearby), DefaultNearest)
	}
	for _, n := range nearby {
		if n.Gem.Name == origin.Name {
			t.Errorf("origin %q appears in its own neighbor list", origin.Name)
		}
	}
	for i := 1; i < len(nearby); i++ {
		if nearby[i-1].DistanceKm > nearby[i].DistanceKm {
			t.Errorf("distances not ascending at %d: %v > %v", i, nearby[i-1].DistanceKm, nearby[i].DistanceKm)
		}
	}
}

func TestNearest_SingleCandidate(t *testing.T) {
	t.Parallel()

	gems := testGems()[:1]
	nearby, err := Nearest(gems[0], gems, DefaultNearest)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if len(nearby) != 0 {
		t.Errorf("Nearest over a single gem returned %d entries, want 0", len(nearby))
	}
}

func TestNearest_KLargerThanCandidates(t *testing.T) {
	t.Parallel()

	gems := testGems()[:3]
	nearby, err := Nearest(gems[0], gems, 10)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if len(nearby) != 2 {
		t.Errorf("Nearest returned %d entries, want 2", len(nearby))
	}
}

func TestNearest_RejectsMalformedCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{name: "nan_latitude", lat: math.NaN(), lon: 75.0},
		{name: "latitude_out_of_range", lat: 95.0, lon: 75.0},
		{name: "longitude_out_of_range", lat: 27.0, lon: 200.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			candidates := []models.HiddenGem{
				{Name: "Valid", Latitude: 27.0, Longitude: 75.0},
				{Name: "Broken", Latitude: tt.lat, Longitude: tt.lon},
			}
			origin := models.HiddenGem{Name: "Origin", Latitude: 26.0, Longitude: 74.0}

			if _, err := Nearest(origin, candidates, 3); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("Nearest error = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}
