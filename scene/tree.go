package scene

import (
	"fmt"
	"strconv"

	"turtleworks/fractal"
	"turtleworks/turtle"
)

// TreeScene draws one fractal tree growing up from near the bottom.
type TreeScene struct {
	Surface Canvas `mapstructure:",squash"`

	Depth  int     `mapstructure:"depth"`
	Length float64 `mapstructure:"length"`
	// Base is how far below the centre the trunk starts.
	Base float64 `mapstructure:"base"`

	name  string
	title string
	shape fractal.Tree
}

// NewTree returns a tree scene drawing shape, with the default size and depth.
func NewTree(name, title string, shape fractal.Tree) *TreeScene {
	return &TreeScene{
		Surface: Canvas{Width: 600, Height: 600, Background: turtle.White, Ink: turtle.Black},
		Depth:   5,
		Length:  80,
		Base:    200,
		name:    name,
		title:   title,
		shape:   shape,
	}
}

func (t *TreeScene) Name() string   { return t.name }
func (t *TreeScene) Title() string  { return t.title }
func (t *TreeScene) Canvas() Canvas { return t.Surface }

func (t *TreeScene) Draw(c turtle.Cursor, _ fractal.Rand) error {
	if err := t.Surface.Validate(); err != nil {
		return err
	}
	if t.Depth < 0 {
		return fmt.Errorf("%w: depth %d", fractal.ErrInvalidArgument, t.Depth)
	}
	c.PenUp()
	if err := c.Goto(turtle.Vec{Y: -t.Base}); err != nil {
		return err
	}
	c.SetHeading(90)
	c.SetWidth(1)
	return t.shape.Draw(c, t.Depth, t.Length)
}

func (t *TreeScene) Params() []Param {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	ps := []Param{
		{"width", strconv.Itoa(t.Surface.Width)},
		{"height", strconv.Itoa(t.Surface.Height)},
		{"background", formatColor(t.Surface.Background)},
		{"depth", strconv.Itoa(t.Depth)},
		{"length", f(t.Length)},
		{"base", f(t.Base)},
	}
	for i, fk := range t.shape.Forks {
		ps = append(ps, Param{fmt.Sprintf("fork%d", i+1), fmt.Sprintf("%+g deg x%g", fk.Angle, fk.Scale)})
	}
	return ps
}
