// Package pathsearch finds the remaining routes to the majority threshold.
//
// Given the units still uncalled in a scenario and a party's current total,
// Search enumerates every minimal winning combination: a set of uncalled units
// that brings the party to types.MajorityThreshold and from which no unit can
// be dropped without falling short.
//
// # Algorithm
//
// Units are sorted by descending electoral votes, ties broken by identifier
// order, and explored depth-first with an explicit stack:
//
//   - A branch is abandoned as soon as its votes plus every vote not yet
//     considered cannot reach the need.
//   - A branch that reaches the need is emitted and never extended, so every
//     emitted set is minimal: its last unit is its smallest.
//   - Enumeration stops after the configured number of combinations and the
//     result is flagged Truncated.
//
// Required units (present in every minimal combination) and the minimum
// number of units needed are computed exactly from vote counts and do not
// depend on the enumeration cap.
//
// FindPivotal projects the per-party results onto jurisdictions.
package pathsearch
