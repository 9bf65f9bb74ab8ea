package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal preview runner.
type TerminalConfig struct {
	ScreenConfig
	Hz int
}

// RunTerminal shows the framebuffer in the terminal. Every cell carries two
// vertically stacked pixels drawn with an upper half block, and the
// framebuffer is sampled down to the terminal size.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	cfg.ScreenConfig = cfg.ScreenConfig.withDefaults()

	// Log lines would scribble over the screen; hold them until Fini.
	var held bytes.Buffer
	logOut := cfg.Log
	cfg.Log = &held

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	h := newHost(cfg.ScreenConfig)
	step := newApp(h)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v := &termView{screen: screen, fb: h.fb, scratch: make([]byte, len(h.fb.buf))}
	runErr := v.loop(ctx, cfg.Hz, step, events, h.kbd)
	close(quit)
	screen.Fini()
	_, _ = io.Copy(logOut, &held)

	if runErr != nil {
		return runErr
	}
	return writeSnapshot(cfg.Snapshot, h.fb)
}

type termView struct {
	screen  tcell.Screen
	fb      *hostFramebuffer
	scratch []byte
	shown   uint64
}

func (v *termView) loop(ctx context.Context, hz int, step func() error, events <-chan tcell.Event, kbd *hostKeyboard) error {
	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape:
					kbd.push(KeyEvent{Code: KeyEscape, Press: true})
				case tcell.KeyCtrlC:
					kbd.push(KeyEvent{Press: true, Rune: 0x03})
				case tcell.KeyEnter:
					kbd.push(KeyEvent{Code: KeyEnter, Press: true})
				case tcell.KeyRune:
					kbd.push(KeyEvent{Press: true, Rune: ev.Rune()})
				}
			case *tcell.EventResize:
				v.shown = 0
				v.screen.Sync()
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrHalt) {
						return nil
					}
					return err
				}
			}
			v.draw()
		}
	}
}

func (v *termView) draw() {
	frames := v.fb.snapshotRGB565(v.scratch)
	if frames == v.shown {
		return
	}
	v.shown = frames

	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := v.sample(cx, cy*2, cols, rows*2)
			bottom := v.sample(cx, cy*2+1, cols, rows*2)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.screen.Show()
}

// sample maps a cell-space pixel (px, py) on a w x h grid to the nearest
// framebuffer pixel.
func (v *termView) sample(px, py, w, h int) tcell.Color {
	fx := px * v.fb.width / w
	fy := py * v.fb.height / h
	off := fy*v.fb.stride + fx*2
	if off < 0 || off+1 >= len(v.scratch) {
		return tcell.ColorBlack
	}
	r, g, b := RGB888(uint16(v.scratch[off]) | uint16(v.scratch[off+1])<<8)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
