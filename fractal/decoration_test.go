package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtleworks/turtle"
)

func TestDrawStarKeepsPose(t *testing.T) {
	for _, down := range []bool{true, false} {
		rec := posed(t)
		if !down {
			rec.PenUp()
		}
		before, heading := rec.Position(), rec.Heading()

		require.NoError(t, DrawStar(rec, 4, turtle.Cyan))

		assert.Equal(t, before, rec.Position())
		assert.Equal(t, heading, rec.Heading())
		assert.Equal(t, down, rec.IsDown())
		assert.Zero(t, rec.Strokes(), "star must not leave a trail")
	}
}

func TestDrawStarCentredOnCursor(t *testing.T) {
	rec := posed(t)
	start, heading := rec.Position(), rec.Heading()

	require.NoError(t, DrawStar(rec, 6, turtle.Yellow))
	require.Equal(t, 1, rec.Count(turtle.OpFillCircle))

	for _, op := range rec.Ops {
		if op.Kind != turtle.OpFillCircle {
			continue
		}
		assert.Equal(t, 6.0, op.Arg)
		assert.Equal(t, turtle.Yellow, op.Color)
		// The disc centre is 6 units left of where FillCircle ran.
		centre := op.Pos.Add(turtle.Polar(op.Heading + 90).Mul(op.Arg))
		assert.True(t, centre.Near(start, eps), "centre %v, want %v", centre, start)
		assert.InDelta(t, heading, op.Heading, eps)
	}
}

func TestDrawStarRejectsBadSize(t *testing.T) {
	for _, size := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		rec := turtle.NewRecorder()
		require.ErrorIs(t, DrawStar(rec, size, turtle.White), ErrInvalidArgument)
		assert.Empty(t, rec.Ops)
	}
}

func TestDrawLeaf(t *testing.T) {
	rec := turtle.NewRecorder()
	require.NoError(t, DrawLeaf(rec, turtle.Green, turtle.Brown))

	require.Equal(t, 1, rec.Count(turtle.OpStamp))
	assert.Equal(t, turtle.Brown, rec.Color())
	for _, op := range rec.Ops {
		if op.Kind == turtle.OpStamp {
			assert.Equal(t, turtle.Green, op.Color)
		}
	}
}
