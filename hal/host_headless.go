package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	ScreenConfig
	Hz    int
	Ticks uint64
}

// RunHeadless runs the app without opening a window.
//
// It returns nil when the app halts or the tick limit is reached, and
// ctx.Err() when the context is cancelled first.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	cfg.ScreenConfig = cfg.ScreenConfig.withDefaults()

	h := newHost(cfg.ScreenConfig)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrHalt) {
						return writeSnapshot(cfg.Snapshot, h.fb)
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return writeSnapshot(cfg.Snapshot, h.fb)
			}
		}
	}
}
