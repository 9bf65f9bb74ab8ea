package hal

import (
	"errors"
	"io"
	"os"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrHalt is returned by an app step to stop the runner cleanly.
var ErrHalt = errors.New("halt")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Writes go to Buffer; backends only show what was last presented.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the drawing session and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// ScreenConfig is shared by every runner.
type ScreenConfig struct {
	Width  int
	Height int

	// Snapshot, when set, is a PNG path written with the last presented
	// frame after the runner stops cleanly.
	Snapshot string

	// Log receives the session log lines; nil means stderr.
	Log io.Writer
}

func (c ScreenConfig) withDefaults() ScreenConfig {
	if c.Log == nil {
		c.Log = os.Stderr
	}
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	return c
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	ScreenConfig
	Title string
	Scale float64
}
