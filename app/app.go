package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"turtleworks/fractal"
	"turtleworks/hal"
	"turtleworks/scene"
	"turtleworks/turtle"
)

type Config struct {
	Scene scene.Scene
	Seed  int64
	Mode  turtle.Mode
	Delay time.Duration
	// Caption writes the scene title and seed in the lower-left corner.
	Caption bool
	// ExitWhenDone makes the step function return hal.ErrHalt once the
	// drawing is finished instead of idling.
	ExitWhenDone bool
	// Metrics receives the primitive counters; nil uses a private registry.
	Metrics prometheus.Registerer
}

// Result describes a finished drawing.
type Result struct {
	Primitives int
	Took       time.Duration
}

type session struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	started  bool
	finished bool
	done     chan error
	result   Result
}

// New prepares a drawing session and returns the per-tick step function
// the hal runners drive.
func New(h hal.HAL, cfg Config) func() error {
	s := newSession(h, cfg)
	return s.step
}

func newSession(h hal.HAL, cfg Config) *session {
	if cfg.Metrics == nil {
		cfg.Metrics = prometheus.NewRegistry()
	}
	return &session{
		h:    h,
		cfg:  cfg,
		log:  h.Logger(),
		done: make(chan error, 1),
	}
}

func (s *session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *session) step() error {
	if s.quitRequested() {
		return hal.ErrHalt
	}
	if !s.started {
		s.started = true
		if err := s.start(); err != nil {
			return err
		}
	}
	if s.finished {
		if s.cfg.ExitWhenDone {
			return hal.ErrHalt
		}
		return nil
	}

	select {
	case err := <-s.done:
		s.finished = true
		if err != nil {
			var pe *PanicError
			if errors.As(err, &pe) {
				showPanic(s.h, pe)
			}
			s.logf("scene %s: %v", s.cfg.Scene.Name(), err)
			return err
		}
		s.logf("scene %s: %d primitives in %v",
			s.cfg.Scene.Name(), s.result.Primitives, s.result.Took.Round(time.Millisecond))
		if s.cfg.ExitWhenDone {
			return hal.ErrHalt
		}
	default:
	}
	return nil
}

func (s *session) quitRequested() bool {
	in := s.h.Input()
	if in == nil {
		return false
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return false
	}
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape || ev.Rune == 'q' || ev.Rune == 0x03 {
				return true
			}
		default:
			return false
		}
	}
}

func (s *session) start() error {
	sc := s.cfg.Scene
	if sc == nil {
		return errors.New("app: no scene")
	}
	disp := s.h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return fmt.Errorf("app: %w: no framebuffer", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	canvas := sc.Canvas()
	if err := canvas.Validate(); err != nil {
		return fmt.Errorf("app: scene %s: %w", sc.Name(), err)
	}
	fb.ClearRGB(canvas.Background.R, canvas.Background.G, canvas.Background.B)
	if err := fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}

	d := turtle.NewFramebufferDisplay(fb)
	t := turtle.New(d, turtle.Config{Mode: s.cfg.Mode, Delay: s.cfg.Delay, Color: canvas.Ink})
	m, err := turtle.NewMetered(t, s.cfg.Metrics)
	if err != nil {
		return fmt.Errorf("app: metrics: %w", err)
	}

	s.logf("scene %s: seed=%d mode=%s canvas=%dx%d", sc.Name(), s.cfg.Seed, s.cfg.Mode, fb.Width(), fb.Height())
	go func() {
		s.done <- s.draw(m, d)
	}()
	return nil
}

func (s *session) draw(m *turtle.Metered, d *turtle.FramebufferDisplay) (err error) {
	defer recoverDraw(&err)

	began := time.Now()
	sc := s.cfg.Scene
	if err := sc.Draw(m, fractal.NewRand(s.cfg.Seed)); err != nil {
		// Keep whatever was drawn on screen.
		_ = m.Flush()
		return fmt.Errorf("draw %s: %w", sc.Name(), err)
	}
	if s.cfg.Caption {
		text := fmt.Sprintf("%s  seed %d", sc.Title(), s.cfg.Seed)
		turtle.CaptionBottomLeft(d, text, sc.Canvas().Ink)
	}
	if err := m.Flush(); err != nil {
		return err
	}
	s.result = Result{Primitives: m.Total(), Took: time.Since(began)}
	return nil
}
