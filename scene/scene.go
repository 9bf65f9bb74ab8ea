// Package scene holds the named drawings the CLI can render and the YAML
// overrides for their parameters.
package scene

import (
	"fmt"
	"image/color"
	"sort"

	"turtleworks/fractal"
	"turtleworks/turtle"
)

// Canvas is the surface a scene expects.
type Canvas struct {
	Width      int        `mapstructure:"width" yaml:"width"`
	Height     int        `mapstructure:"height" yaml:"height"`
	Background color.RGBA `mapstructure:"background" yaml:"background"`
	Ink        color.RGBA `mapstructure:"ink" yaml:"ink"`
}

// MaxCanvasSide bounds canvas width and height in pixels.
const MaxCanvasSide = 8192

// Validate rejects empty canvases and sides above MaxCanvasSide.
func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxCanvasSide || c.Height > MaxCanvasSide {
		return fmt.Errorf("%w: canvas %dx%d (each side 1..%d)", fractal.ErrInvalidArgument, c.Width, c.Height, MaxCanvasSide)
	}
	return nil
}

// Scene is a named drawing.
type Scene interface {
	Name() string
	Title() string
	Canvas() Canvas
	// Draw issues the whole drawing on c. It does not flush.
	Draw(c turtle.Cursor, r fractal.Rand) error
	// Params lists the tunables for display, in a stable order.
	Params() []Param
}

// Param is a printable name/value pair.
type Param struct {
	Name  string
	Value string
}

// Registry maps scene names to scenes.
type Registry struct {
	scenes map[string]Scene
}

// Defaults returns the built-in scenes.
func Defaults() *Registry {
	r := &Registry{scenes: make(map[string]Scene)}
	r.add(NewGalaxy())
	r.add(NewTree("tree", "Binary tree", fractal.BinaryTree()))
	r.add(NewTree("bushy", "Asymmetric tree", fractal.BushyTree()))
	r.add(NewTree("leafy", "Tree with leaves", fractal.LeafyTree()))
	return r
}

func (r *Registry) add(s Scene) { r.scenes[s.Name()] = s }

// Get returns the named scene.
func (r *Registry) Get(name string) (Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("scene %q not found (have %v)", name, r.Names())
	}
	return s, nil
}

// Names returns scene names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for n := range r.scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func formatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
