// Package store persists analysis snapshots in a local bbolt database.
//
// A Snapshot pairs the input scenario with its ElectionAnalysis, a creation
// timestamp and free-text notes. Snapshots are keyed by time-ordered UUIDs
// (version 7), so List returns them oldest first without a secondary index.
//
// The analysis engine itself performs no I/O; callers decide what to keep:
//
//	st, err := store.Open(filepath.Join(dir, "snapshots.db"), nil)
//	if err != nil { /* handle */ }
//	defer st.Close()
//
//	analysis, _ := analyzer.Analyze(pr)
//	snap, err := st.Save(store.Snapshot{Input: pr, Analysis: analysis, Notes: "election night"})
package store
