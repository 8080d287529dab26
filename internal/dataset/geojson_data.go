// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package dataset

import "github.com/arjunv-dev/dharohar/internal/models"

// indiaBoundaries returns a deliberately simplified state boundary set.
// The rectangles are placeholders for map rendering, not geographically
// accurate outlines.
func indiaBoundaries() models.GeoJSONFeatureCollection {
	return models.GeoJSONFeatureCollection{
		Type: "FeatureCollection",
		Features: []models.GeoJSONFeature{
			{
				Type:       "Feature",
				Properties: models.GeoJSONProperties{State: "Rajasthan"},
				Geometry: models.GeoJSONGeometry{
					Type: "Polygon",
					Coordinates: [][][2]float64{
						{{72.0, 27.0}, {72.0, 28.0}, {73.0, 28.0}, {73.0, 27.0}, {72.0, 27.0}},
					},
				},
			},
			{
				Type:       "Feature",
				Properties: models.GeoJSONProperties{State: "Gujarat"},
				Geometry: models.GeoJSONGeometry{
					Type: "Polygon",
					Coordinates: [][][2]float64{
						{{70.0, 22.0}, {70.0, 23.0}, {71.0, 23.0}, {71.0, 22.0}, {70.0, 22.0}},
					},
				},
			},
			{
				Type:       "Feature",
				Properties: models.GeoJSONProperties{State: "Maharashtra"},
				Geometry: models.GeoJSONGeometry{
					Type: "Polygon",
					Coordinates: [][][2]float64{
						{{73.0, 19.0}, {73.0, 20.0}, {74.0, 20.0}, {74.0, 19.0}, {73.0, 19.0}},
					},
				},
			},
		},
	}
}
