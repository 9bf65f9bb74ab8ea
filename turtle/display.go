package turtle

import (
	"image/color"
	"math"

	"turtleworks/hal"
)

// FramebufferDisplay adapts an RGB565 hal.Framebuffer to drivers.Displayer.
type FramebufferDisplay struct {
	fb hal.Framebuffer
}

// NewFramebufferDisplay wraps fb; nil draws nothing.
func NewFramebufferDisplay(fb hal.Framebuffer) *FramebufferDisplay {
	return &FramebufferDisplay{fb: fb}
}

// Size reports the framebuffer size, clamped to what int16 pixel
// coordinates can address.
func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return clampSide(d.fb.Width()), clampSide(d.fb.Height())
}

func clampSide(v int) int16 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// Clear fills the whole back buffer with c.
func (d *FramebufferDisplay) Clear(c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.ClearRGB(c.R, c.G, c.B)
}

// At reads back a pixel; ok is false outside the buffer.
func (d *FramebufferDisplay) At(x, y int) (c color.RGBA, ok bool) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return color.RGBA{}, false
	}
	buf := d.fb.Buffer()
	if x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return color.RGBA{}, false
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return color.RGBA{}, false
	}
	r, g, b := hal.RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}
