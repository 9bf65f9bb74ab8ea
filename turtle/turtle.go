package turtle

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"tinygo.org/x/drivers"
)

// Mode selects when drawing becomes visible.
type Mode uint8

const (
	// Buffered draws everything and presents once, on Flush.
	Buffered Mode = iota
	// Immediate presents after every primitive that drew something.
	Immediate
)

func (m Mode) String() string {
	switch m {
	case Buffered:
		return "buffered"
	case Immediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// ParseMode accepts "buffered" or "immediate".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "buffered", "":
		return Buffered, nil
	case "immediate":
		return Immediate, nil
	}
	return 0, fmt.Errorf("turtle: unknown mode %q", s)
}

// Config holds the initial pen and presentation settings.
type Config struct {
	Mode Mode
	// Delay pauses after each immediate present so the drawing can be watched.
	Delay time.Duration
	Color color.RGBA
	Width float64
}

// Turtle is a Cursor that rasterizes onto a Displayer.
// It is not safe for concurrent use.
type Turtle struct {
	r      raster
	origin Vec

	pos     Vec
	heading float64
	down    bool
	color   color.RGBA
	width   float64

	mode  Mode
	delay time.Duration
	sleep func(time.Duration)
}

var _ Cursor = (*Turtle)(nil)

// New returns a turtle at the centre of d, heading east, pen down.
func New(d drivers.Displayer, cfg Config) *Turtle {
	r := newRaster(d)
	t := &Turtle{
		r:      r,
		origin: Vec{X: float64(r.w) / 2, Y: float64(r.h) / 2},
		down:   true,
		color:  cfg.Color,
		width:  cfg.Width,
		mode:   cfg.Mode,
		delay:  cfg.Delay,
		sleep:  time.Sleep,
	}
	if t.color == (color.RGBA{}) {
		t.color = Black
	}
	if t.width <= 0 {
		t.width = 1
	}
	return t
}

func (t *Turtle) Forward(dist float64) error {
	return t.moveTo(t.pos.Add(Polar(t.heading).Mul(dist)))
}

func (t *Turtle) Backward(dist float64) error { return t.Forward(-dist) }

func (t *Turtle) Goto(p Vec) error { return t.moveTo(p) }

func (t *Turtle) Left(deg float64)       { t.heading = NormalizeHeading(t.heading + deg) }
func (t *Turtle) Right(deg float64)      { t.heading = NormalizeHeading(t.heading - deg) }
func (t *Turtle) SetHeading(deg float64) { t.heading = NormalizeHeading(deg) }
func (t *Turtle) Heading() float64       { return t.heading }
func (t *Turtle) Position() Vec          { return t.pos }

func (t *Turtle) PenUp()                { t.down = false }
func (t *Turtle) PenDown()              { t.down = true }
func (t *Turtle) IsDown() bool          { return t.down }
func (t *Turtle) SetColor(c color.RGBA) { t.color = c }
func (t *Turtle) Color() color.RGBA     { return t.color }

func (t *Turtle) SetWidth(w float64) {
	if w > 0 {
		t.width = w
	}
}

func (t *Turtle) FillCircle(radius float64, c color.RGBA) error {
	if radius == 0 || math.IsNaN(radius) {
		return nil
	}
	centre := t.pos.Add(Polar(t.heading + 90).Mul(radius))
	x, y := t.toScreen(centre)
	t.r.disc(x, y, math.Abs(radius), c)
	return t.present()
}

// stampShape is the classic turtle arrow: (along heading, to the left).
var stampShape = [4]Vec{{X: 0, Y: 0}, {X: -9, Y: 5}, {X: -7, Y: 0}, {X: -9, Y: -5}}

func (t *Turtle) Stamp() error {
	fwd := Polar(t.heading)
	left := Polar(t.heading + 90)
	var px, py [4]int
	for i, s := range stampShape {
		x, y := t.toScreen(t.pos.Add(fwd.Mul(s.X)).Add(left.Mul(s.Y)))
		px[i], py[i] = roundInt(x), roundInt(y)
	}
	t.r.triangle(px[0], py[0], px[1], py[1], px[2], py[2], t.color)
	t.r.triangle(px[0], py[0], px[2], py[2], px[3], py[3], t.color)
	return t.present()
}

func (t *Turtle) Flush() error {
	if err := t.r.d.Display(); err != nil {
		return fmt.Errorf("turtle: flush: %w", err)
	}
	return nil
}

func (t *Turtle) moveTo(p Vec) error {
	from := t.pos
	t.pos = p
	if !t.down {
		return nil
	}

	radius := t.width / 2
	x0, y0 := t.toScreen(from)
	x1, y1 := t.toScreen(p)
	x0, y0, x1, y1, ok := t.r.clipSegment(x0, y0, x1, y1, radius+1)
	if !ok {
		return nil
	}
	t.r.line(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), radius, t.color)
	return t.present()
}

func (t *Turtle) present() error {
	if t.mode != Immediate {
		return nil
	}
	if err := t.r.d.Display(); err != nil {
		return fmt.Errorf("turtle: present: %w", err)
	}
	if t.delay > 0 {
		t.sleep(t.delay)
	}
	return nil
}

// toScreen maps turtle space to pixel space.
func (t *Turtle) toScreen(p Vec) (float64, float64) {
	return t.origin.X + p.X, t.origin.Y - p.Y
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
