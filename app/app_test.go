package app

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtleworks/fractal"
	"turtleworks/hal"
	"turtleworks/scene"
	"turtleworks/turtle"
)

type panicScene struct{ scene.Scene }

func (panicScene) Draw(turtle.Cursor, fractal.Rand) error { panic("pen snapped") }

func run(t *testing.T, cfg Config, snapshot string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	canvas := cfg.Scene.Canvas()
	hc := hal.HeadlessConfig{
		ScreenConfig: hal.ScreenConfig{Width: canvas.Width, Height: canvas.Height, Snapshot: snapshot, Log: &logs},
		Hz:           1000,
		Ticks:        20000,
	}
	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error { return New(h, cfg) }, hc)
	return logs.String(), err
}

func TestDrawTreeHeadless(t *testing.T) {
	tree := scene.NewTree("tree", "Binary tree", fractal.BinaryTree())
	tree.Surface.Width, tree.Surface.Height = 200, 200
	tree.Base, tree.Length, tree.Depth = 80, 40, 4

	reg := prometheus.NewRegistry()
	out := filepath.Join(t.TempDir(), "tree.png")
	logs, err := run(t, Config{Scene: tree, Seed: 1, ExitWhenDone: true, Metrics: reg}, out)
	require.NoError(t, err)
	assert.Contains(t, logs, "scene tree: seed=1 mode=buffered canvas=200x200")
	assert.Contains(t, logs, "primitives in")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The trunk runs straight up the middle from y = 100+80.
	r, g, b, _ := img.At(100, 170).RGBA()
	assert.Zero(t, r|g|b, "trunk pixel not black")
	r, _, _, _ = img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xFFFF), r, "background not white")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "turtleworks_primitives_total", families[0].GetName())
}

func TestDrawGalaxyImmediateWithCaption(t *testing.T) {
	g := scene.NewGalaxy()
	g.Surface.Width, g.Surface.Height = 160, 120
	g.Arms, g.Depth, g.Length, g.Steps = 3, 2, 60, 8

	_, err := run(t, Config{Scene: g, Seed: 7, Mode: turtle.Immediate, Caption: true, ExitWhenDone: true}, "")
	require.NoError(t, err)
}

func TestDrawErrorStopsRunner(t *testing.T) {
	g := scene.NewGalaxy()
	g.Surface.Width, g.Surface.Height = 64, 64
	g.Shrink = 2

	_, err := run(t, Config{Scene: g, Seed: 1, ExitWhenDone: true}, "")
	require.ErrorIs(t, err, fractal.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "draw galaxy")
}

func TestDrawPanicBecomesError(t *testing.T) {
	sc := panicScene{scene.NewTree("boom", "Boom", fractal.BinaryTree())}
	out := filepath.Join(t.TempDir(), "panic.png")

	logs, err := run(t, Config{Scene: sc, Seed: 1}, out)
	assert.Contains(t, logs, "panic: pen snapped")
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "pen snapped", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestNoSceneFails(t *testing.T) {
	step := New(hal.New(10, 10), Config{})
	assert.Error(t, step())
}

func TestTakeRunes(t *testing.T) {
	head, rest := takeRunes("héllo world", 5)
	assert.Equal(t, "héllo", head)
	assert.Equal(t, " world", rest)

	head, rest = takeRunes("abc", 10)
	assert.Equal(t, "abc", head)
	assert.Empty(t, rest)
}
