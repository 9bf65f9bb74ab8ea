package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"turtleworks/hal"
	"turtleworks/turtle"
)

// PanicError carries a panic recovered from the drawing goroutine.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("drawing panicked: %v", e.Value)
}

// recoverDraw turns a panic into a *PanicError stored in *err.
func recoverDraw(err *error) {
	if v := recover(); v != nil {
		*err = &PanicError{Value: v, Stack: debug.Stack()}
	}
}

// showPanic logs the panic and paints it over the canvas.
func showPanic(h hal.HAL, pe *PanicError) {
	lines := []string{
		"turtleworks panic:",
		fmt.Sprintf("panic: %v", pe.Value),
	}
	if len(pe.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(255, 255, 255)
	d := turtle.NewFramebufferDisplay(fb)

	const lineHeight = 10
	charWidth := turtle.CaptionWidth("0")
	if charWidth <= 0 {
		charWidth = 6
	}
	cols := (fb.Width() - 8) / charWidth
	if cols <= 0 {
		cols = 1
	}
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	y := lineHeight
	for _, line := range lines {
		for len(line) > 0 && y <= fb.Height() {
			chunk, rest := takeRunes(line, cols)
			turtle.Caption(d, 4, int16(y), chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
		if y > fb.Height() {
			break
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
