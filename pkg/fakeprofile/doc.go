// Package fakeprofile scores the likelihood that a user profile is fake,
// bot-operated or a scam account.
//
// # Scoring Model
//
// AnalyzeProfile computes four independent sub-scores (photo, bio, name,
// completeness), each accumulated from weighted indicator checks. The
// sub-scores are summed, divided by a fixed normalization constant of 4.0
// and clamped to [0,1]. A profile is suspicious when the normalized score
// reaches 0.7, which maps to the FlagForReview recommendation; AutoBlock is
// part of the recommendation taxonomy but no current rule produces it.
//
// The normalization constant is fixed regardless of which indicators apply
// to a given profile. Keeping it this way preserves score compatibility
// with existing moderation thresholds; see the recalibration note in
// DESIGN.md before changing it.
//
// # Pluggable Photo Checks
//
// Per-photo checks (stock-photo lookup, face consistency, image quality)
// are capability interfaces. The defaults are neutral: they never flag
// anything, keeping the analyzer's core deterministic and testable without
// a vision backend. A failing or panicking plugin is treated as "not
// flagged".
//
// Per-photo checks for a single profile run concurrently; results re-join
// by photo index so indicator messages keep stable positions.
//
// # Behavioral Analysis
//
// AnalyzeBehavior applies the same clamped-sum model to activity counters
// (messages sent/received, match count, account age) instead of content.
// The two analyses use disjoint signal sets and can be consumed separately.
package fakeprofile
