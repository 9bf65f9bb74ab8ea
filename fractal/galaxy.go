package fractal

import (
	"fmt"
	"image/color"

	"turtleworks/turtle"
)

// GalaxyParams describe a whole galaxy.
type GalaxyParams struct {
	Arms      int
	Depth     int
	Length    float64
	TurnAngle float64
	Steps     int
	Shrink    float64
	// ArmOffset is how far from the origin each arm starts.
	ArmOffset float64
	CoreSize  float64
	CoreColor color.RGBA
}

// DefaultGalaxy returns the five-armed galaxy.
func DefaultGalaxy() GalaxyParams {
	return GalaxyParams{
		Arms:      5,
		Depth:     4,
		Length:    260,
		TurnAngle: 18,
		Steps:     32,
		Shrink:    0.55,
		ArmOffset: 6,
		CoreSize:  12,
		CoreColor: turtle.White,
	}
}

// Validate reports parameters Render cannot draw as ErrInvalidArgument.
func (p GalaxyParams) Validate() error {
	switch {
	case p.Arms < 1:
		return fmt.Errorf("%w: arms %d < 1", ErrInvalidArgument, p.Arms)
	case !(p.Length > 0):
		return fmt.Errorf("%w: length %v", ErrInvalidArgument, p.Length)
	case p.Steps < 1:
		return fmt.Errorf("%w: steps %d < 1", ErrInvalidArgument, p.Steps)
	case !(p.Shrink > 0 && p.Shrink < 1):
		return fmt.Errorf("%w: shrink %v outside (0,1)", ErrInvalidArgument, p.Shrink)
	case !(p.CoreSize > 0):
		return fmt.Errorf("%w: core size %v", ErrInvalidArgument, p.CoreSize)
	}
	return nil
}

// Render draws Arms evenly spaced arms around the origin and a bright core
// star. It returns the drawer so callers can inspect its call count.
func Render(c turtle.Cursor, r Rand, p GalaxyParams, opts Options) (*Drawer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := NewDrawer(c, r, opts)
	origin := turtle.Vec{}

	c.PenUp()
	if err := c.Goto(origin); err != nil {
		return d, err
	}
	c.SetHeading(0)
	c.PenDown()

	for arm := 0; arm < p.Arms; arm++ {
		c.PenUp()
		if err := c.Goto(origin); err != nil {
			return d, err
		}
		c.SetHeading(360 / float64(p.Arms) * float64(arm))
		if err := c.Forward(p.ArmOffset); err != nil {
			return d, err
		}
		c.PenDown()

		b := Branch{
			Depth:      p.Depth,
			Length:     p.Length,
			TurnAngle:  p.TurnAngle,
			Steps:      p.Steps,
			Shrink:     p.Shrink,
			ColorIndex: r.Intn(len(d.opts.Palette)),
		}
		if err := d.DrawBranch(b); err != nil {
			return d, fmt.Errorf("arm %d: %w", arm, err)
		}

		c.PenUp()
		if err := c.Backward(p.ArmOffset); err != nil {
			return d, err
		}
		if err := c.Goto(origin); err != nil {
			return d, err
		}
		c.PenDown()
	}

	c.PenUp()
	if err := c.Goto(origin); err != nil {
		return d, err
	}
	c.SetHeading(0)
	c.PenDown()
	if err := DrawStar(c, p.CoreSize, p.CoreColor); err != nil {
		return d, err
	}
	return d, nil
}
