package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/toyz/geomtyper/internal/models"
	"github.com/toyz/geomtyper/internal/utils"
)

func TestWatchRegeneratesOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	input := writeTestFile(t, dir, "geom.fcl", "rInner: 10\n")
	output := filepath.Join(dir, "fragments.txt")

	g, _, stderr := newTestGenerator(utils.DiagnosticError)
	g.WatchDebounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan error, 16)
	done := make(chan error, 1)
	go func() {
		done <- g.Watch(ctx, Config{InputPath: input, OutputPath: output}, func(err error) { runs <- err })
	}()

	select {
	case err := <-runs:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("initial run did not happen")
	}

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "const double rInner;")

	require.NoError(t, os.WriteFile(input, []byte("rOuter: 20 // cm\n"), 0o644))

	select {
	case err := <-runs:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("change did not trigger a run")
	}

	content, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "const double rOuter;")
	assert.NotContains(t, string(content), "rInner")

	require.NoError(t, os.WriteFile(input, []byte("broken\n"), 0o644))

	select {
	case err := <-runs:
		assert.ErrorIs(t, err, models.ErrMissingSeparator)
	case <-time.After(5 * time.Second):
		t.Fatal("second change did not trigger a run")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	diag := stderr.String()
	assert.Contains(t, diag, "Type: Parse Error (MissingSeparator)")
	assert.Contains(t, diag, "[ERROR] Generation failed, waiting for changes to "+input)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "geom.fcl", "rInner: 10\n")

	g, _, _ := newTestGenerator(utils.DiagnosticError)
	g.WatchDebounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan error, 16)
	go func() {
		_ = g.Watch(ctx, Config{InputPath: input, OutputPath: filepath.Join(dir, "out.txt")}, func(err error) { runs <- err })
	}()

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("initial run did not happen")
	}

	writeTestFile(t, dir, "unrelated.fcl", "x: 1\n")

	select {
	case <-runs:
		t.Fatal("unrelated file triggered a run")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchedPaths(t *testing.T) {
	paths, err := watchedPaths(Config{InputPath: "geom.fcl", ConfigFile: "dialect.toml"})
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	for p := range paths {
		assert.True(t, filepath.IsAbs(p))
	}
}
