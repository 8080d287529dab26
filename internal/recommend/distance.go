// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arjunv-dev/dharohar/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DefaultNearest is the neighbor count used by the destination profile.
const DefaultNearest = 3

// ErrInvalidCoordinate reports a latitude/longitude outside the valid
// range, or a NaN. Rankings over such inputs would be silently wrong, so
// they are rejected up front.
var ErrInvalidCoordinate = fmt.Errorf("invalid coordinate")

// ValidateCoordinate checks that a latitude/longitude pair is a real
// point on the globe.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return fmt.Errorf("%w: NaN", ErrInvalidCoordinate)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, lon)
	}
	return nil
}

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// Nearest returns up to k candidates closest to origin, ascending by
// distance. The origin itself is excluded by name. The sort is stable, so
// equidistant candidates keep input order. Candidates with malformed
// coordinates cause an error rather than a wrong ranking.
func Nearest(origin models.HiddenGem, candidates []models.HiddenGem, k int) ([]models.NearbyGem, error) {
	if err := ValidateCoordinate(origin.Latitude, origin.Longitude); err != nil {
		return nil, fmt.Errorf("origin %q: %w", origin.Name, err)
	}

	nearby := make([]models.NearbyGem, 0, len(candidates))
	for _, c := range candidates {
		if strings.EqualFold(c.Name, origin.Name) {
			continue
		}
		if err := ValidateCoordinate(c.Latitude, c.Longitude); err != nil {
			return nil, fmt.Errorf("candidate %q: %w", c.Name, err)
		}
		nearby = append(nearby, models.NearbyGem{
			Gem:        c,
			DistanceKm: Haversine(origin.Latitude, origin.Longitude, c.Latitude, c.Longitude),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if k >= 0 && len(nearby) > k {
		nearby = nearby[:k]
	}
	return nearby, nil
}
