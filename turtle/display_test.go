package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtleworks/hal"
)

func TestFramebufferDisplayReadBack(t *testing.T) {
	fb := hal.New(32, 16).Display().Framebuffer()
	d := NewFramebufferDisplay(fb)

	w, h := d.Size()
	assert.Equal(t, int16(32), w)
	assert.Equal(t, int16(16), h)

	d.Clear(Blue)
	d.SetPixel(3, 4, White)
	d.SetPixel(-1, 4, Red)
	d.SetPixel(32, 0, Red)

	c, ok := d.At(3, 4)
	require.True(t, ok)
	assert.Equal(t, White, c)

	c, ok = d.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, Blue, c)

	_, ok = d.At(32, 0)
	assert.False(t, ok)
}

func TestTurtleOnFramebuffer(t *testing.T) {
	fb := hal.New(64, 64).Display().Framebuffer()
	d := NewFramebufferDisplay(fb)
	d.Clear(Black)

	tt := New(d, Config{Color: Yellow})
	tt.PenUp()
	require.NoError(t, tt.FillCircle(6, Yellow))
	require.NoError(t, tt.Flush())

	c, ok := d.At(32, 26)
	require.True(t, ok)
	assert.Equal(t, Yellow, c)

	c, ok = d.At(32, 40)
	require.True(t, ok)
	assert.Equal(t, Black, c)
}

func TestCaptionDrawsInk(t *testing.T) {
	d := newFakeDisplay(120, 40)

	CaptionBottomLeft(d, "seed 42", White)
	assert.NotEmpty(t, d.pixels)
	assert.Greater(t, CaptionWidth("seed 42"), CaptionWidth("seed"))
}

func TestFramebufferDisplayClampsWideBuffers(t *testing.T) {
	fb := hal.New(40000, 4).Display().Framebuffer()
	d := NewFramebufferDisplay(fb)

	w, h := d.Size()
	assert.Equal(t, int16(32767), w)
	assert.Equal(t, int16(4), h)

	tt := New(d, Config{Color: White})
	require.NoError(t, tt.Forward(10))

	c, ok := d.At(int(w)/2+5, 2)
	require.True(t, ok)
	assert.Equal(t, White, c)
}
