package turtle

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// raster draws clipped primitives onto a Displayer.
type raster struct {
	d    drivers.Displayer
	w, h int
}

func newRaster(d drivers.Displayer) raster {
	w, h := d.Size()
	return raster{d: d, w: int(w), h: int(h)}
}

func (r raster) plot(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.d.SetPixel(int16(x), int16(y), c)
}

// line draws a Bresenham line. A radius of at least one pixel stamps a
// disc at every step to give the pen its width.
func (r raster) line(x0, y0, x1, y1 int, radius float64, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if radius < 1 {
			r.plot(x0, y0, c)
		} else {
			r.disc(float64(x0), float64(y0), radius, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r raster) disc(cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 || math.IsNaN(radius) {
		return
	}
	minX := clampInt(int(math.Floor(cx-radius)), 0, r.w)
	maxX := clampInt(int(math.Ceil(cx+radius)), -1, r.w-1)
	minY := clampInt(int(math.Floor(cy-radius)), 0, r.h)
	maxY := clampInt(int(math.Ceil(cy+radius)), -1, r.h-1)
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= r2 {
				r.d.SetPixel(int16(x), int16(y), c)
			}
		}
	}
}

// triangle fills a triangle of either winding.
func (r raster) triangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX := clampInt(min3(x0, x1, x2), 0, r.w)
	maxX := clampInt(max3(x0, x1, x2), -1, r.w-1)
	minY := clampInt(min3(y0, y1, y2), 0, r.h)
	maxY := clampInt(max3(y0, y1, y2), -1, r.h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			r.d.SetPixel(int16(x), int16(y), c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clipSegment clips the segment (x0,y0)-(x1,y1) to the raster grown by pad
// pixels on every side (Liang-Barsky). ok is false when nothing is visible.
func (r raster) clipSegment(x0, y0, x1, y1, pad float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	minX, minY := -pad, -pad
	maxX, maxY := float64(r.w-1)+pad, float64(r.h-1)+pad
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
