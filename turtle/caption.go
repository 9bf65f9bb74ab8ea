package turtle

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var captionFont = &proggy.TinySZ8pt7b

// Caption writes text with its baseline at (x, y) in pixel space.
func Caption(d drivers.Displayer, x, y int16, text string, c color.RGBA) {
	tinyfont.WriteLine(d, captionFont, x, y, text, c)
}

// CaptionBottomLeft writes text in the lower-left corner of d.
func CaptionBottomLeft(d drivers.Displayer, text string, c color.RGBA) {
	_, h := d.Size()
	Caption(d, 6, h-6, text, c)
}

// CaptionWidth returns the rendered width of text in pixels.
func CaptionWidth(text string) int {
	_, outbox := tinyfont.LineWidth(captionFont, text)
	return int(outbox)
}
