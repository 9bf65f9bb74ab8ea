package fractal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtleworks/turtle"
)

func TestRenderFiveArms(t *testing.T) {
	p := DefaultGalaxy()
	opts := DefaultOptions()

	type start struct {
		pos     turtle.Vec
		heading float64
	}
	var arms []start
	opts.Observer = func(nesting int, _ Branch, pos turtle.Vec, heading float64) {
		if nesting == 1 {
			arms = append(arms, start{pos, heading})
		}
	}

	rec := turtle.NewRecorder()
	d, err := Render(rec, NewRand(42), p, opts)
	require.NoError(t, err)
	require.Len(t, arms, 5)
	assert.Greater(t, d.Calls(), 5)

	for k, a := range arms {
		want := turtle.Polar(72 * float64(k)).Mul(p.ArmOffset)
		assert.True(t, a.pos.Near(want, eps), "arm %d starts at %v, want %v", k, a.pos, want)
		assert.InDelta(t, 72*float64(k), a.heading, eps, "arm %d", k)
	}

	for i, op := range rec.Ops {
		if op.Kind == turtle.OpGoto {
			assert.False(t, op.Down, "op %d: goto with pen down", i)
		}
	}

	assert.True(t, rec.Position().Near(turtle.Vec{}, eps))
	assert.InDelta(t, 0, rec.Heading(), eps)
	assert.True(t, rec.IsDown())
}

func TestRenderEndsWithCoreStar(t *testing.T) {
	p := DefaultGalaxy()
	p.CoreColor = turtle.Orange
	rec := turtle.NewRecorder()

	_, err := Render(rec, NewRand(1), p, DefaultOptions())
	require.NoError(t, err)

	var last turtle.Op
	for _, op := range rec.Ops {
		if op.Kind == turtle.OpFillCircle {
			last = op
		}
	}
	assert.Equal(t, p.CoreSize, last.Arg)
	assert.Equal(t, turtle.Orange, last.Color)
	// Centred on the origin: the cursor stood CoreSize to the right.
	assert.True(t, last.Pos.Near(turtle.Vec{Y: -p.CoreSize}, eps), "core drawn from %v", last.Pos)
}

func TestRenderDeterministic(t *testing.T) {
	run := func() []turtle.Op {
		rec := turtle.NewRecorder()
		_, err := Render(rec, NewRand(2024), DefaultGalaxy(), DefaultOptions())
		require.NoError(t, err)
		return rec.Ops
	}
	assert.True(t, turtle.SameSequence(run(), run(), 0))
}

func TestRenderValidates(t *testing.T) {
	mutations := map[string]func(*GalaxyParams){
		"no arms":     func(p *GalaxyParams) { p.Arms = 0 },
		"zero length": func(p *GalaxyParams) { p.Length = 0 },
		"no steps":    func(p *GalaxyParams) { p.Steps = 0 },
		"shrink":      func(p *GalaxyParams) { p.Shrink = 1.5 },
		"core":        func(p *GalaxyParams) { p.CoreSize = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := DefaultGalaxy()
			mutate(&p)
			rec := turtle.NewRecorder()

			_, err := Render(rec, NewRand(1), p, DefaultOptions())
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Empty(t, rec.Ops)
		})
	}
}

func TestRenderWrapsArmErrors(t *testing.T) {
	rec := turtle.NewRecorder()
	rec.FailAt = 10

	_, err := Render(rec, NewRand(1), DefaultGalaxy(), DefaultOptions())
	require.ErrorIs(t, err, turtle.ErrInjected)
	assert.Contains(t, err.Error(), "arm 0")
}

func TestRenderBudgetAcrossArms(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxCalls = 3

	_, err := Render(turtle.NewRecorder(), NewRand(1), DefaultGalaxy(), opts)
	require.True(t, errors.Is(err, ErrBudgetExceeded), "got %v", err)
}
