// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [...],
//	  "metadata": {
//	    "timestamp": "2026-08-29T12:00:00Z",
//	    "count": 24
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Invalid year range",
//	    "details": {"field": "from"}
//	  },
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and caching.
//
// Fields:
//   - Timestamp: Server time when the response was generated
//   - Count: Number of records in a list response (omitted for scalars)
//   - Cached: Whether the response was served from the TTL cache
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count,omitempty"`
	Cached    bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist
//   - DATASET_UNAVAILABLE: A required dataset failed to load or is empty
//   - METHOD_NOT_ALLOWED: HTTP method not supported on this route
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	DatasetsLoaded bool    `json:"datasets_loaded"`
	ArtForms       int     `json:"art_forms"`
	TourismTrends  int     `json:"tourism_trends"`
	HiddenGems     int     `json:"hidden_gems"`
	Initiatives    int     `json:"initiatives"`
	Uptime         float64 `json:"uptime_seconds"`
}
