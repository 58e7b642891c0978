// Package testing provides test utilities for the electoralcollege library.
//
// It follows Go's convention of shipping test helpers in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing to testing.T
//   - NewRecordingLogger: Logger capturing records for assertions
//   - NewRecordingMetrics: MetricsCollector counting observations
//   - NewScenario: Fluent PartialResult builder
//   - AllUncalled, Clinched, Tied, LastUnitStanding: Ready-made scenarios
//
// Example usage:
//
//	import (
//	    "testing"
//	    ectest "github.com/debashishc/electoralcollege/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    scenario := ectest.NewScenario().Call(types.PartyDemocrat, types.CA, types.NY).Build()
//	    // analyze scenario
//	}
package testing
