package scene

import (
	"fmt"
	"strconv"

	"turtleworks/fractal"
	"turtleworks/turtle"
)

// Galaxy is the spiral galaxy scene.
type Galaxy struct {
	Surface Canvas `mapstructure:",squash"`

	Arms      int     `mapstructure:"arms"`
	Depth     int     `mapstructure:"depth"`
	Length    float64 `mapstructure:"length"`
	TurnAngle float64 `mapstructure:"turn_angle"`
	Steps     int     `mapstructure:"steps"`
	Shrink    float64 `mapstructure:"shrink"`
	ArmOffset float64 `mapstructure:"arm_offset"`
	CoreSize  float64 `mapstructure:"core_size"`

	MinLength        float64 `mapstructure:"min_length"`
	StarInterval     int     `mapstructure:"star_interval"`
	SpawnProbability float64 `mapstructure:"spawn_probability"`
	MaxCalls         int     `mapstructure:"max_calls"`
}

// NewGalaxy returns the galaxy scene with its default parameters.
func NewGalaxy() *Galaxy {
	p := fractal.DefaultGalaxy()
	o := fractal.DefaultOptions()
	return &Galaxy{
		Surface:          Canvas{Width: 900, Height: 800, Background: turtle.Black, Ink: turtle.White},
		Arms:             p.Arms,
		Depth:            p.Depth,
		Length:           p.Length,
		TurnAngle:        p.TurnAngle,
		Steps:            p.Steps,
		Shrink:           p.Shrink,
		ArmOffset:        p.ArmOffset,
		CoreSize:         p.CoreSize,
		MinLength:        o.MinLength,
		StarInterval:     o.StarInterval,
		SpawnProbability: o.SpawnProbability,
		MaxCalls:         o.MaxCalls,
	}
}

func (g *Galaxy) Name() string   { return "galaxy" }
func (g *Galaxy) Title() string  { return "Galaxy" }
func (g *Galaxy) Canvas() Canvas { return g.Surface }

func (g *Galaxy) params() fractal.GalaxyParams {
	return fractal.GalaxyParams{
		Arms:      g.Arms,
		Depth:     g.Depth,
		Length:    g.Length,
		TurnAngle: g.TurnAngle,
		Steps:     g.Steps,
		Shrink:    g.Shrink,
		ArmOffset: g.ArmOffset,
		CoreSize:  g.CoreSize,
		CoreColor: turtle.White,
	}
}

func (g *Galaxy) options() fractal.Options {
	o := fractal.DefaultOptions()
	o.MinLength = g.MinLength
	o.StarInterval = g.StarInterval
	o.SpawnProbability = g.SpawnProbability
	o.MaxCalls = g.MaxCalls
	return o
}

func (g *Galaxy) validate() error {
	if err := g.Surface.Validate(); err != nil {
		return err
	}
	if g.StarInterval < 0 {
		return fmt.Errorf("%w: star interval %d", fractal.ErrInvalidArgument, g.StarInterval)
	}
	return g.params().Validate()
}

func (g *Galaxy) Draw(c turtle.Cursor, r fractal.Rand) error {
	if err := g.validate(); err != nil {
		return err
	}
	c.SetWidth(2)
	_, err := fractal.Render(c, r, g.params(), g.options())
	return err
}

func (g *Galaxy) Params() []Param {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []Param{
		{"width", strconv.Itoa(g.Surface.Width)},
		{"height", strconv.Itoa(g.Surface.Height)},
		{"background", formatColor(g.Surface.Background)},
		{"arms", strconv.Itoa(g.Arms)},
		{"depth", strconv.Itoa(g.Depth)},
		{"length", f(g.Length)},
		{"turn_angle", f(g.TurnAngle)},
		{"steps", strconv.Itoa(g.Steps)},
		{"shrink", f(g.Shrink)},
		{"arm_offset", f(g.ArmOffset)},
		{"core_size", f(g.CoreSize)},
		{"min_length", f(g.MinLength)},
		{"star_interval", strconv.Itoa(g.StarInterval)},
		{"spawn_probability", f(g.SpawnProbability)},
		{"max_calls", strconv.Itoa(g.MaxCalls)},
	}
}
