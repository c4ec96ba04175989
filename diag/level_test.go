package diag_test

import (
	"testing"

	"github.com/agapow/relais-dev/diag"
	"github.com/stretchr/testify/assert"
)

// TestLevelString verifies level-to-name conversion is total: 0-5 map to the
// recognised names and everything out of range falls back to ANY.
func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level diag.Level
		want  string
	}{
		{diag.LevelDebug, "DEBUG"},
		{diag.LevelInfo, "INFO"},
		{diag.LevelWarn, "WARN"},
		{diag.LevelError, "ERROR"},
		{diag.LevelFatal, "FATAL"},
		{diag.LevelAny, "ANY"},
		{diag.Level(6), "ANY"},
		{diag.Level(255), "ANY"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

// TestLevelFromInt verifies integers 0-5 map to their levels and anything
// out of range, including negatives, maps to LevelAny.
func TestLevelFromInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want diag.Level
	}{
		{0, diag.LevelDebug},
		{1, diag.LevelInfo},
		{2, diag.LevelWarn},
		{3, diag.LevelError},
		{4, diag.LevelFatal},
		{5, diag.LevelAny},
		{6, diag.LevelAny},
		{-1, diag.LevelAny},
		{1000, diag.LevelAny},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, diag.LevelFromInt(tt.n), "n=%d", tt.n)
	}
}

// TestLine verifies the formatted line and the empty-label separator rule.
func TestLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ERROR: bad input", diag.Line("ERROR", "bad input"))
	assert.Equal(t, "bad input", diag.Line("", "bad input"))
}
