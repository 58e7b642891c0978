// Package registry provides the immutable state registry.
//
// The registry is the table of all 51 jurisdictions that appoint electors, with
// their electoral votes, congressional districts, split-vote allocation and
// region. The package includes:
//
//   - Static: Immutable, validated table implementing types.Registry
//   - Default: The built-in table (2024 apportionment)
//   - Load, LoadFile: Parse a table from YAML
//
// A Static is constructed once and shared read-only by every analysis; it has
// no mutating methods and is safe for concurrent use.
package registry
