package testing

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/debashishc/electoralcollege/types"
)

// NewTestLogger creates a logger that writes to the testing.T log, so records
// show up next to the failing test.
func NewTestLogger(t *testing.T) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t *testing.T
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Logf("DEBUG: %s %v", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.t.Logf("INFO: %s %v", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Logf("WARN: %s %v", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.t.Logf("ERROR: %s %v", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Fatalf("FATAL: %s %v", msg, keysAndValues)
}

// Record is one captured log call.
type Record struct {
	Level   string
	Message string
	Fields  map[string]any
}

// RecordingLogger captures log calls. It is safe for concurrent use.
type RecordingLogger struct {
	mu      sync.Mutex
	records []Record
}

var _ types.Logger = (*RecordingLogger)(nil)

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Records returns a copy of everything logged so far.
func (l *RecordingLogger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.records)
}

// Messages returns the messages logged at level, in order.
func (l *RecordingLogger) Messages(level string) []string {
	var out []string
	for _, r := range l.Records() {
		if r.Level == level {
			out = append(out, r.Message)
		}
	}

	return out
}

func (l *RecordingLogger) Debug(msg string, keysAndValues ...any) { l.add("DEBUG", msg, keysAndValues) }
func (l *RecordingLogger) Info(msg string, keysAndValues ...any)  { l.add("INFO", msg, keysAndValues) }
func (l *RecordingLogger) Warn(msg string, keysAndValues ...any)  { l.add("WARN", msg, keysAndValues) }
func (l *RecordingLogger) Error(msg string, keysAndValues ...any) { l.add("ERROR", msg, keysAndValues) }
func (l *RecordingLogger) Fatal(msg string, keysAndValues ...any) { l.add("FATAL", msg, keysAndValues) }

func (l *RecordingLogger) add(level, msg string, keysAndValues []any) {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = "<missing>"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{Level: level, Message: msg, Fields: fields})
}
