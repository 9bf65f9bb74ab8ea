// Package turtle provides the drawing cursor used by the fractal scenes.
//
// A Cursor has a position (origin at the canvas centre, y pointing up), a
// heading in degrees (0 = east, counter-clockwise positive), a pen that is
// either up or down, a pen colour and a pen width. Turtle rasterizes onto any
// TinyGo drivers.Displayer; Recorder only records the primitives it receives.
package turtle

import (
	"image/color"
	"math"
)

// Vec is a point or offset in turtle space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec      { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec      { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Mul(s float64) Vec  { return Vec{X: v.X * s, Y: v.Y * s} }
func (v Vec) Len() float64       { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Near reports whether v lies within eps of o.
func (v Vec) Near(o Vec, eps float64) bool { return v.Dist(o) <= eps }

// Polar returns the unit vector for a heading in degrees.
func Polar(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// NormalizeHeading maps any angle into [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Cursor is the drawing context handed to every drawing routine.
//
// Primitives that can touch the backend return an error; a failed
// primitive leaves whatever was drawn so far in place.
type Cursor interface {
	Forward(dist float64) error
	Backward(dist float64) error
	Left(deg float64)
	Right(deg float64)
	SetHeading(deg float64)
	Heading() float64
	Position() Vec
	Goto(p Vec) error

	PenUp()
	PenDown()
	IsDown() bool
	SetColor(c color.RGBA)
	Color() color.RGBA
	SetWidth(w float64)

	// FillCircle fills a circle whose centre lies radius units to the left
	// of the cursor. Position, heading and pen state are left untouched.
	FillCircle(radius float64, c color.RGBA) error
	// Stamp imprints the cursor shape at the current position in the pen colour.
	Stamp() error
	// Flush presents everything drawn so far.
	Flush() error
}
