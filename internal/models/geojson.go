// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package models

// GeoJSONGeometry holds a Polygon geometry as nested coordinate rings.
// Coordinates follow the GeoJSON convention: [longitude, latitude].
type GeoJSONGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// GeoJSONProperties carries the per-feature attributes. State boundary
// features set only the state name.
type GeoJSONProperties struct {
	State string `json:"state"`
}

// GeoJSONFeature is a single state boundary feature.
type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Properties GeoJSONProperties `json:"properties"`
	Geometry   GeoJSONGeometry   `json:"geometry"`
}

// GeoJSONFeatureCollection is the top-level boundary document served by
// the geo endpoint.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}
