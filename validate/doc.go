// Package validate turns caller-supplied, string-keyed scenarios into
// types.PartialResult values.
//
// Input arrives in loose textual form (postal codes or full names, party tags
// in any accepted spelling) from files, requests or tests. The Validator checks
// its shape with struct tags, resolves every identifier and tag, and then runs
// the registry checks the aggregator would run, so that a scenario that passes
// here never fails analysis on input-contract grounds.
//
// Errors:
//   - Shape failures (empty keys, oversized values) wrap types.ErrMalformedInput
//   - Unknown identifiers and duplicate spellings are *types.JurisdictionError
//   - Unknown party tags are *types.PartyError naming the jurisdiction
package validate
