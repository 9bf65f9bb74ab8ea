package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "turtleworks "), out)
}

func TestScenesListsDefaults(t *testing.T) {
	out, err := execute(t, "scenes", "--config", "")
	require.NoError(t, err)
	for _, name := range []string{"galaxy", "tree", "bushy", "leafy", "spawn_probability"} {
		assert.Contains(t, out, name)
	}
}

func TestScenesWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenes:\n  galaxy:\n    arms: 11\n"), 0o644))

	out, err := execute(t, "scenes", "--config", path)
	require.NoError(t, err)
	assert.Regexp(t, `arms\s+11`, out)
}

func TestDrawDryRun(t *testing.T) {
	out, err := execute(t, "draw", "leafy", "--config", "", "--dry-run", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "leafy: seed 5")
	assert.Contains(t, out, "32 leaves")
}

func TestDrawUnknownScene(t *testing.T) {
	_, err := execute(t, "draw", "nebula", "--config", "", "--dry-run")
	require.Error(t, err)
}

func TestDrawHeadlessWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "tree.png")
	prom := filepath.Join(dir, "tree.prom")

	_, err := execute(t, "draw", "tree", "--config", "", "--dry-run=false",
		"--backend", "headless", "--seed", "3", "--out", png, "--metrics-out", prom)
	require.NoError(t, err)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `turtleworks_primitives_total{op="forward"} 31`)
}

func TestDrawRejectsBackend(t *testing.T) {
	_, err := execute(t, "draw", "tree", "--config", "", "--dry-run=false", "--backend", "plotter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plotter")
}

func TestDrawSeedZeroIsReproducible(t *testing.T) {
	first, err := execute(t, "draw", "galaxy", "--config", "", "--dry-run", "--seed", "0")
	require.NoError(t, err)
	assert.Contains(t, first, "galaxy: seed 0,")

	second, err := execute(t, "draw", "galaxy", "--config", "", "--dry-run", "--seed", "0")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDrawRejectsOversizeCanvas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenes:\n  tree:\n    width: 40000\n"), 0o644))
	out := filepath.Join(t.TempDir(), "big.png")

	_, err := execute(t, "draw", "tree", "--config", path, "--dry-run=false",
		"--backend", "headless", "--seed", "1", "--out", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canvas 40000x600")
	assert.NoFileExists(t, out)
}
