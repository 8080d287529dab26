// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package recommend implements the preference-based destination scorer and
// the great-circle nearest-neighbor ranker.
//
// Both are pure functions over the immutable gem table: same inputs always
// produce the same ranking. Ties are broken by the canonical table order,
// which the stable sorts preserve.
//
// The scoring formula is additive over three terms:
//
//   - +3 when the gem's art form appears in the preferred set (only when
//     the set is non-empty)
//   - +2 on an exact accessibility match
//   - a crowd-fit term: gem visitors are normalized to a 0-10 scale
//     against the busiest gem, and (10 - |crowd preference - normalized|)/2
//     is added
//
// Interest-level sliders and the region/duration/season fields are part of
// the preference vector but intentionally do not contribute to the score.
package recommend
