package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlog(t *testing.T) {
	t.Run("nil falls back to default logger", func(t *testing.T) {
		logger := NewSlog(nil)

		require.NotNil(t, logger)
		require.Same(t, slog.Default(), logger.logger)
	})

	t.Run("wraps the given logger", func(t *testing.T) {
		base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

		require.Same(t, base, NewSlog(base).logger)
	})
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{name: "debug", log: func(l *SlogLogger) { l.Debug("analysis complete", "winner", "NONE") }, level: "level=DEBUG"},
		{name: "info", log: func(l *SlogLogger) { l.Info("analysis complete", "winner", "NONE") }, level: "level=INFO"},
		{name: "warn", log: func(l *SlogLogger) { l.Warn("analysis complete", "winner", "NONE") }, level: "level=WARN"},
		{name: "error", log: func(l *SlogLogger) { l.Error("analysis complete", "winner", "NONE") }, level: "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(NewSlogText(buf, slog.LevelDebug))

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "analysis complete")
			assert.Contains(t, out, "winner=NONE")
		})
	}
}

func TestSlogLogger_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("path enumeration truncated", "party", "DEM")
	require.Contains(t, buf.String(), "party=DEM")
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelInfo).With("scenario", 3)

	logger.Info("analysis complete")

	require.Contains(t, buf.String(), "scenario=3")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("msg", "k", "v")
		logger.Info("msg")
		logger.Warn("msg")
		logger.Error("msg")
		logger.Fatal("msg")
	})
}
