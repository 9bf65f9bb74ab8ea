package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tt := range tests {
		got := RGB565(tt.r, tt.g, tt.b)
		if got != tt.want {
			t.Fatalf("RGB565(%d,%d,%d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
		r, g, b := RGB888(got)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("RGB888(%#04x) = %d,%d,%d, want %d,%d,%d", got, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestFramebufferPresentCopiesBackBuffer(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(255, 0, 0)

	scratch := make([]byte, len(fb.front))
	if frames := fb.snapshotRGB565(scratch); frames != 0 {
		t.Fatalf("frames = %d before Present, want 0", frames)
	}
	if scratch[0] != 0 || scratch[1] != 0 {
		t.Fatalf("front buffer changed before Present")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	fb.ClearRGB(0, 0, 255)

	if frames := fb.snapshotRGB565(scratch); frames != 1 {
		t.Fatalf("frames = %d, want 1", frames)
	}
	got := uint16(scratch[0]) | uint16(scratch[1])<<8
	if got != 0xF800 {
		t.Fatalf("presented pixel = %#04x, want red", got)
	}
}

func TestNewHostDefaults(t *testing.T) {
	h := newHost(ScreenConfig{})
	if h.fb.Width() != 320 || h.fb.Height() != 320 {
		t.Fatalf("default screen = %dx%d, want 320x320", h.fb.Width(), h.fb.Height())
	}
	if h.fb.StrideBytes() != 640 {
		t.Fatalf("StrideBytes() = %d, want 640", h.fb.StrideBytes())
	}
	if h.Display().Framebuffer().Format() != PixelFormatRGB565 {
		t.Fatalf("Format() not RGB565")
	}
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{w: &buf}
	l.WriteLineString("hello")
	l.WriteLineBytes([]byte("world"))
	if got := buf.String(); got != "hello\nworld\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestKeyboardPushDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < 100; i++ {
		k.push(KeyEvent{Press: true, Rune: 'a'})
	}
	if n := len(k.Events()); n != 64 {
		t.Fatalf("queued = %d, want 64", n)
	}
}

func TestEncodePNG(t *testing.T) {
	h := New(8, 6)
	fb := h.Display().Framebuffer()
	fb.ClearRGB(0, 255, 0)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, fb); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 8x6", b)
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 {
		t.Fatalf("pixel = %d,%d,%d, want green", r, g, b)
	}
}

func TestRunHeadlessHaltWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	steps := 0
	newApp := func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		return func() error {
			steps++
			if steps < 3 {
				return nil
			}
			fb.ClearRGB(255, 255, 255)
			if err := fb.Present(); err != nil {
				return err
			}
			return ErrHalt
		}
	}

	cfg := HeadlessConfig{ScreenConfig: ScreenConfig{Width: 16, Height: 16, Snapshot: path}, Hz: 1000}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xFFFF {
		t.Fatalf("snapshot not white")
	}
}

func TestRunHeadlessTickLimit(t *testing.T) {
	steps := 0
	newApp := func(HAL) func() error {
		return func() error { steps++; return nil }
	}
	cfg := HeadlessConfig{Hz: 1000, Ticks: 5}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessReturnsStepError(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) func() error {
		return func() error { return boom }
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want boom", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	newApp := func(HAL) func() error {
		return func() error { return nil }
	}
	err := RunHeadless(ctx, newApp, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() error = %v, want deadline exceeded", err)
	}
}
