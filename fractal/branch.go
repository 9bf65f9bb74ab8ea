package fractal

import (
	"fmt"
	"image/color"
	"math"

	"turtleworks/turtle"
)

const (
	DefaultMinLength        = 10
	DefaultStarInterval     = 4
	DefaultSpawnProbability = 0.5
	DefaultMaxCalls         = 100000
)

// Branch is one recursive arm invocation.
type Branch struct {
	Depth      int
	Length     float64
	TurnAngle  float64
	Steps      int
	Shrink     float64
	ColorIndex int
}

func (b Branch) String() string {
	return fmt.Sprintf("branch(depth=%d len=%.2f turn=%.2f steps=%d shrink=%.2f color=%d)",
		b.Depth, b.Length, b.TurnAngle, b.Steps, b.Shrink, b.ColorIndex)
}

// terminal reports the base case: nothing is drawn.
func (b Branch) terminal(minLength float64) bool {
	return b.Depth <= 0 || b.Length < minLength || math.IsNaN(b.Length)
}

func (b Branch) validate() error {
	switch {
	case b.Steps < 1:
		return fmt.Errorf("%w: steps %d < 1", ErrInvalidArgument, b.Steps)
	case !(b.Shrink > 0 && b.Shrink < 1):
		return fmt.Errorf("%w: shrink %v outside (0,1)", ErrInvalidArgument, b.Shrink)
	case math.IsInf(b.Length, 0):
		return fmt.Errorf("%w: length %v", ErrInvalidArgument, b.Length)
	case math.IsNaN(b.TurnAngle) || math.IsInf(b.TurnAngle, 0):
		return fmt.Errorf("%w: turn angle %v", ErrInvalidArgument, b.TurnAngle)
	}
	return nil
}

// Options tune the arm drawer.
type Options struct {
	// MinLength is the length below which a branch draws nothing.
	MinLength float64
	// StarInterval places a star every N steps; 0 disables stars and
	// therefore child arms.
	StarInterval int
	// SpawnProbability is the chance a star grows a child arm.
	SpawnProbability float64
	// MaxCalls caps non-terminal branch calls per drawer; 0 means no cap.
	MaxCalls int
	// Palette supplies arm colours.
	Palette []color.RGBA
	// Observer, if set, runs on entry to every non-terminal branch with the
	// nesting level (1 for the outermost call) and the cursor pose.
	Observer func(nesting int, b Branch, pos turtle.Vec, heading float64)
}

// DefaultOptions returns the galaxy settings.
func DefaultOptions() Options {
	return Options{
		MinLength:        DefaultMinLength,
		StarInterval:     DefaultStarInterval,
		SpawnProbability: DefaultSpawnProbability,
		MaxCalls:         DefaultMaxCalls,
		Palette:          turtle.GalaxyPalette,
	}
}

// Drawer draws galaxy arms on one cursor. It is not safe for concurrent use.
type Drawer struct {
	c     turtle.Cursor
	r     Rand
	opts  Options
	calls int
}

// NewDrawer returns a drawer for c; an empty palette falls back to GalaxyPalette.
func NewDrawer(c turtle.Cursor, r Rand, opts Options) *Drawer {
	if len(opts.Palette) == 0 {
		opts.Palette = turtle.GalaxyPalette
	}
	return &Drawer{c: c, r: r, opts: opts}
}

// Calls returns the number of non-terminal branch calls made so far.
func (d *Drawer) Calls() int { return d.calls }

// DrawBranch draws one spiral arm with DefaultOptions.
func DrawBranch(c turtle.Cursor, r Rand, b Branch) error {
	return NewDrawer(c, r, DefaultOptions()).DrawBranch(b)
}

// DrawBranch draws one spiral arm made of b.Steps short segments, turning
// b.TurnAngle after each. Stars mark every StarInterval-th step and may
// grow a smaller child arm. The cursor returns to its entry position and
// heading, pen down.
func (d *Drawer) DrawBranch(b Branch) error {
	return d.branch(b, 1)
}

func (d *Drawer) branch(b Branch, nesting int) error {
	if b.terminal(d.opts.MinLength) {
		return nil
	}
	if err := b.validate(); err != nil {
		return err
	}
	d.calls++
	if d.opts.MaxCalls > 0 && d.calls > d.opts.MaxCalls {
		return fmt.Errorf("%w: more than %d branches", ErrBudgetExceeded, d.opts.MaxCalls)
	}

	c := d.c
	start := c.Position()
	startHeading := c.Heading()
	if d.opts.Observer != nil {
		d.opts.Observer(nesting, b, start, startHeading)
	}

	armColor := d.pick(b.ColorIndex)
	armWidth := float64(b.Depth + 1)
	c.SetColor(armColor)
	c.SetWidth(armWidth)

	step := b.Length / float64(b.Steps)
	for i := 0; i < b.Steps; i++ {
		c.PenDown()
		if err := c.Forward(step); err != nil {
			return err
		}
		c.Left(b.TurnAngle)
		// Overlap the tip slightly with the last segment.
		if i == b.Steps-1 {
			if err := c.Backward(step * 0.08); err != nil {
				return err
			}
		}

		if d.opts.StarInterval <= 0 || i%d.opts.StarInterval != 0 {
			continue
		}
		spot := c.Position()
		spotHeading := c.Heading()
		if err := DrawStar(c, math.Max(1.5, float64(b.Depth)*1.8), armColor); err != nil {
			return err
		}
		if !d.spawn(b, i) {
			continue
		}

		c.PenUp()
		if err := c.Goto(spot); err != nil {
			return err
		}
		c.SetHeading(spotHeading)
		c.Right(14 + float64(i%7))
		if err := c.Forward(step * 1.2); err != nil {
			return err
		}
		c.PenDown()

		child := Branch{
			Depth:      b.Depth - 1,
			Length:     b.Length * b.Shrink,
			TurnAngle:  b.TurnAngle * (0.9 + d.r.Float64()*0.2),
			Steps:      max(6, int(float64(b.Steps)*b.Shrink)),
			Shrink:     b.Shrink,
			ColorIndex: b.ColorIndex + 1,
		}
		if err := d.branch(child, nesting+1); err != nil {
			return err
		}

		c.PenUp()
		if err := c.Goto(spot); err != nil {
			return err
		}
		c.SetHeading(spotHeading)
		c.PenDown()
		c.SetColor(armColor)
		c.SetWidth(armWidth)
	}

	c.PenUp()
	if err := c.Goto(start); err != nil {
		return err
	}
	c.SetHeading(startHeading)
	c.PenDown()
	return nil
}

// spawn decides whether the star at step i grows a child arm. Arms that can
// spawn always consume one random draw per star.
func (d *Drawer) spawn(b Branch, i int) bool {
	if b.Depth <= 1 {
		return false
	}
	lucky := d.r.Float64() < d.opts.SpawnProbability
	return lucky || i%(d.opts.StarInterval*2) == 0
}

func (d *Drawer) pick(colorIndex int) color.RGBA {
	p := d.opts.Palette
	i := (colorIndex + d.r.Intn(len(p))) % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
