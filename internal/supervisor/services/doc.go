// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package services provides suture.Service wrappers for the components
// the supervisor tree manages: the HTTP server and the response cache
// maintenance loop.
package services
