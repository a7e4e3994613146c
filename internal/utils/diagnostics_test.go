package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(level, &buf)
	d.SetColors(false)
	return d, &buf
}

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    DiagnosticLevel
		expected string
	}{
		{"silent", DiagnosticSilent, ""},
		{"error", DiagnosticError, "[ERROR] e\n"},
		{"warn", DiagnosticWarn, "[ERROR] e\n[WARN] w\n"},
		{"info", DiagnosticInfo, "[ERROR] e\n[WARN] w\n[INFO] i\n[SUCCESS] s\n"},
		{"verbose", DiagnosticVerbose, "[ERROR] e\n[WARN] w\n[INFO] i\n[SUCCESS] s\n[VERBOSE] v\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newTestDiagnostics(tt.level)
			d.Error("e")
			d.Warn("w")
			d.Info("i")
			d.Success("s")
			d.Verbose("v")
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestDiagnosticIndentAndList(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticVerbose)

	d.Subsection("Entries")
	d.Indent()
	d.List("%s (%s)", "position", "DoubleVector")
	d.Info("nested")
	d.Unindent()
	d.Unindent()
	d.Info("top")

	assert.Equal(t, "\nEntries:\n  - position (DoubleVector)\n  [INFO] nested\n[INFO] top\n", buf.String())
}

func TestDiagnosticSummary(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticVerbose)
	d.Summary("Done", []Stat{{"Entries", 3}, {"Vectors", 1}})
	assert.Equal(t, "\nDone\n   Entries: 3\n   Vectors: 1\n", buf.String())

	quiet, qbuf := newTestDiagnostics(DiagnosticInfo)
	quiet.Summary("Done", []Stat{{"Entries", 3}})
	assert.Empty(t, qbuf.String())
}

func TestDiagnosticColors(t *testing.T) {
	d, buf := newTestDiagnostics(DiagnosticInfo)
	d.SetColors(true)
	d.Info("hello")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "hello")
}
