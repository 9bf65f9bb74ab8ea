package fractal

import (
	"fmt"
	"image/color"
	"math"

	"turtleworks/turtle"
)

// Fork is one child of a tree node: the heading offset from the parent
// (positive turns left) and the length scale for the child.
type Fork struct {
	Angle float64
	Scale float64
}

// Tree is a recursive tree shape. Every node draws its trunk, visits the
// forks in order turning relative to the previous fork, turns back to the
// trunk heading and backs down the trunk.
type Tree struct {
	Forks []Fork
	// Trunk is the pen colour for branches.
	Trunk color.RGBA
	// Leaf, if non-zero, is stamped at every tip.
	Leaf color.RGBA
	// MinLength ends a branch early, like the galaxy arm; 0 means
	// DefaultMinLength.
	MinLength float64
	// MaxCalls caps drawn nodes per Draw; 0 means DefaultMaxCalls.
	MaxCalls int
}

// BinaryTree splits symmetrically 47 degrees either side at 0.8 scale.
func BinaryTree() Tree {
	return Tree{
		Forks: []Fork{{Angle: 47, Scale: 0.8}, {Angle: -47, Scale: 0.8}},
		Trunk: turtle.Black,
	}
}

// BushyTree has three uneven forks.
func BushyTree() Tree {
	return Tree{
		Forks: []Fork{{Angle: 40, Scale: 0.7}, {Angle: -20, Scale: 0.6}, {Angle: -60, Scale: 0.5}},
		Trunk: turtle.Black,
	}
}

// LeafyTree is the binary tree in brown with green leaves at the tips.
func LeafyTree() Tree {
	t := BinaryTree()
	t.Trunk = turtle.Brown
	t.Leaf = turtle.Green
	return t
}

func (t Tree) validate(length float64) error {
	if len(t.Forks) == 0 {
		return fmt.Errorf("%w: tree without forks", ErrInvalidArgument)
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return fmt.Errorf("%w: length %v", ErrInvalidArgument, length)
	}
	for i, f := range t.Forks {
		if !(f.Scale > 0 && f.Scale < 1) {
			return fmt.Errorf("%w: fork %d scale %v outside (0,1)", ErrInvalidArgument, i, f.Scale)
		}
	}
	return nil
}

// Draw draws the tree from the cursor upward along its heading. A tip is
// reached at depth 0 or once a branch would be shorter than MinLength; tips
// only draw the leaf, if any.
func (t Tree) Draw(c turtle.Cursor, depth int, length float64) error {
	if err := t.validate(length); err != nil {
		return err
	}
	w := treeWalk{Tree: t, c: c, minLength: t.MinLength, maxCalls: t.MaxCalls}
	if w.minLength <= 0 {
		w.minLength = DefaultMinLength
	}
	if w.maxCalls <= 0 {
		w.maxCalls = DefaultMaxCalls
	}
	c.SetColor(t.Trunk)
	c.PenDown()
	return w.node(depth, length)
}

type treeWalk struct {
	Tree
	c         turtle.Cursor
	minLength float64
	maxCalls  int
	calls     int
}

func (w *treeWalk) node(depth int, length float64) error {
	c := w.c
	if depth <= 0 || length < w.minLength {
		if w.Leaf == (color.RGBA{}) {
			return nil
		}
		return DrawLeaf(c, w.Leaf, w.Trunk)
	}
	w.calls++
	if w.calls > w.maxCalls {
		return fmt.Errorf("%w: more than %d tree nodes", ErrBudgetExceeded, w.maxCalls)
	}

	if err := c.Forward(length); err != nil {
		return err
	}
	turned := 0.0
	for _, f := range w.Forks {
		turn(c, f.Angle-turned)
		turned = f.Angle
		if err := w.node(depth-1, length*f.Scale); err != nil {
			return err
		}
	}
	turn(c, -turned)
	return c.Backward(length)
}

func turn(c turtle.Cursor, deg float64) {
	switch {
	case deg > 0:
		c.Left(deg)
	case deg < 0:
		c.Right(-deg)
	}
}
