// Package electoralcollege analyzes U.S. Electoral College scenarios.
//
// Given a partial assignment of the 51 jurisdictions to parties, an Analyzer
// computes the current vote totals, whether a party has clinched the 270-vote
// majority, and, for each party still in contention, every minimal
// combination of uncalled jurisdictions that would carry it over the line.
// Jurisdictions present in every minimal combination of some party are
// reported as pivotal.
//
// # Quick Start
//
//	cfg := electoralcollege.DefaultConfig()
//	analyzer, err := electoralcollege.NewAnalyzer(&cfg, electoralcollege.DefaultRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scenario := types.NewPartialResult()
//	scenario.Call(types.CA, types.PartyDemocrat)
//	scenario.Call(types.TX, types.PartyRepublican)
//
//	analysis, err := analyzer.Analyze(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(analysis.RemainingPaths[types.PartyDemocrat].NeededVotes)
//
// # Split-vote Jurisdictions
//
// Maine and Nebraska award two at-large votes to the statewide winner and one
// vote per congressional district. A bare call awards every vote to one party;
// a PartialResult.Splits entry allocates the at-large block and each district
// separately. Partially called split jurisdictions contribute their uncalled
// portions to the path search as separate units (for example "NE-2").
//
// # Enumeration Cap
//
// The number of minimal combinations grows exponentially with the number of
// uncalled jurisdictions. Config.MaxCombinations bounds how many are kept per
// party; PathInfo.Truncated reports when the cap was hit. Required units,
// MinStatesNeeded and the pivotal set are exact regardless of the cap.
//
// # Concurrency
//
// An Analyzer is safe for concurrent use. AnalyzeAll evaluates many scenarios
// in parallel, bounded by Config.MaxParallel, and analyzes duplicate
// scenarios once.
//
// # Collaborators
//
//   - registry: built-in and YAML-loaded jurisdiction tables
//   - validate: converts string-keyed caller input into a PartialResult
//   - store: persists analyses with a timestamp and notes in a bbolt file
package electoralcollege
