// Package types provides core type definitions and interfaces for the electoral college library.
//
// This package contains shared types that are used across multiple packages. By
// keeping them in a leaf package, internal implementations can depend on them
// without importing the root electoralcollege package.
//
// Key types:
//   - Jurisdiction, Party, Region: Closed enumerations
//   - JurisdictionInfo, Registry: The immutable state registry
//   - PartialResult: A scenario of called and uncalled jurisdictions
//   - VoteTotals, PathInfo, ElectionAnalysis: Analysis output
//   - Logger, MetricsCollector: Ambient observability interfaces
package types
