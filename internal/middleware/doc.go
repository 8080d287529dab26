// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package middleware provides handler-level HTTP middleware: request ID
// propagation and Prometheus instrumentation. Router-level middleware
// (CORS, rate limiting, security headers) lives in the api package next
// to the router that composes it.
package middleware
