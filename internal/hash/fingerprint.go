// Package hash computes stable scenario fingerprints for the analysis cache.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/debashishc/electoralcollege/types"
)

// splitMarker separates the call byte of a jurisdiction from its split block.
const splitMarker = 0xff

// Fingerprint returns a 64-bit XXH3 hash of the scenario.
//
// The hash walks the 51 jurisdictions in identifier order, so two scenarios
// that are PartialResult.Equal always share a fingerprint regardless of map
// iteration order or explicit PartyNone entries. Unknown keys are ignored;
// callers validate scenarios before hashing.
//
// Parameters:
//   - pr: Scenario to hash
//   - seed: Hash seed (0 for unseeded)
//
// Returns:
//   - uint64: Fingerprint suitable as a cache key
func Fingerprint(pr types.PartialResult, seed uint64) uint64 {
	h := xxh3.NewSeed(seed)

	buf := make([]byte, 0, 4*types.JurisdictionCount)
	for _, j := range types.Jurisdictions() {
		buf = append(buf, byte(pr.Calls[j]))

		sr, ok := pr.Splits[j]
		if !ok {
			continue
		}
		buf = append(buf, splitMarker, byte(sr.AtLarge))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(sr.Districts))) //nolint:gosec
		for _, p := range sr.Districts {
			buf = append(buf, byte(p))
		}
	}
	_, _ = h.Write(buf)

	return h.Sum64()
}
