package fractal

import (
	"fmt"
	"image/color"
	"math"

	"turtleworks/turtle"
)

// DrawStar fills a disc of radius size centred on the cursor. Position,
// heading and pen state are the same afterwards.
func DrawStar(c turtle.Cursor, size float64, col color.RGBA) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: star size %v", ErrInvalidArgument, size)
	}
	pos := c.Position()
	heading := c.Heading()
	down := c.IsDown()

	// FillCircle centres the disc size units to the left; step right first.
	c.PenUp()
	c.Right(90)
	if err := c.Forward(size); err != nil {
		return err
	}
	c.Left(90)
	if err := c.FillCircle(size, col); err != nil {
		return err
	}

	if err := c.Goto(pos); err != nil {
		return err
	}
	c.SetHeading(heading)
	if down {
		c.PenDown()
	}
	return nil
}

// DrawLeaf stamps the cursor shape in leaf, then switches the pen back to
// trunk.
func DrawLeaf(c turtle.Cursor, leaf, trunk color.RGBA) error {
	c.SetColor(leaf)
	if err := c.Stamp(); err != nil {
		return err
	}
	c.SetColor(trunk)
	return nil
}
