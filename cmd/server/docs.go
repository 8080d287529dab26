// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package main provides the Dharohar HTTP server
//
// Dharohar serves curated datasets on Indian cultural heritage: traditional
// art forms, tourism trends, lesser-known destinations, and responsible
// tourism initiatives.
//
// @title Dharohar API
// @version 1.0
// @description Analytics and exploration API for Indian cultural heritage
// @description
// @description ## Datasets
// @description
// @description - **Art Forms**: 24 traditional art forms with locations and visitor volumes
// @description - **Tourism Trends**: State-year tourism figures for 2015-2022
// @description - **Hidden Gems**: 20 lesser-known cultural destinations
// @description - **Initiatives**: 15 responsible tourism programs
// @description
// @description ## Recommendations
// @description
// @description POST /api/v1/recommendations scores every hidden gem against a
// @description visitor preference vector (preferred art forms, accessibility,
// @description crowd tolerance) and returns the top five destinations.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description CSV exports are limited to 10 per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-29T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/arjunv-dev/dharohar/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8436
// @BasePath /
// @schemes http https
//
// @tag.name ArtForms
// @tag.description Traditional art form listings, distinct states, and types
//
// @tag.name Trends
// @tag.description Tourism trend rows and derived analytics (yearly totals, growth, COVID impact, ratios)
//
// @tag.name Gems
// @tag.description Hidden gem listings, profiles, and nearest-neighbour queries
//
// @tag.name Recommendations
// @tag.description Preference-based destination recommendations
//
// @tag.name Initiatives
// @tag.description Responsible tourism initiatives
//
// @tag.name Geo
// @tag.description Map layers
//
// @tag.name Export
// @tag.description CSV dataset downloads
//
// @tag.name Health
// @tag.description Health, liveness, and readiness probes
package main
