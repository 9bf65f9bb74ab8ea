package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"turtleworks/app"
	"turtleworks/fractal"
	"turtleworks/hal"
	"turtleworks/scene"
	"turtleworks/turtle"
)

var drawCmd = &cobra.Command{
	Use:   "draw [scene]",
	Short: "Draw a scene (galaxy, tree, bushy, leafy)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	f := drawCmd.Flags()
	f.Int64("seed", 0, "Random seed (picked from the clock when not set)")
	f.Bool("immediate", false, "Present after every primitive instead of once at the end")
	f.Duration("delay", 0, "Pause after each present in immediate mode")
	f.String("backend", "window", "Where to show the drawing: window, headless or term")
	f.StringP("out", "o", "", "Write the final frame as PNG")
	f.Float64("scale", 1, "Window scale factor")
	f.Bool("caption", false, "Write the scene title and seed on the canvas")
	f.String("metrics-out", "", "Write primitive counters to a Prometheus textfile")
	f.Bool("dry-run", false, "Only record primitives and print how many were issued")
}

func runDraw(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	name := "galaxy"
	if len(args) > 0 {
		name = args[0]
	}
	sc, err := reg.Get(name)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	seed, _ := flags.GetInt64("seed")
	if !flags.Changed("seed") {
		seed = time.Now().UnixNano()
	}
	if dry, _ := flags.GetBool("dry-run"); dry {
		return dryRun(cmd, sc, seed)
	}

	immediate, _ := flags.GetBool("immediate")
	delay, _ := flags.GetDuration("delay")
	backend, _ := flags.GetString("backend")
	out, _ := flags.GetString("out")
	scale, _ := flags.GetFloat64("scale")
	caption, _ := flags.GetBool("caption")
	metricsOut, _ := flags.GetString("metrics-out")

	metrics := prometheus.NewRegistry()
	cfg := app.Config{
		Scene:   sc,
		Seed:    seed,
		Mode:    turtle.Buffered,
		Delay:   delay,
		Caption: caption,
		Metrics: metrics,
	}
	if immediate {
		cfg.Mode = turtle.Immediate
	}

	canvas := sc.Canvas()
	if err := canvas.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", sc.Name(), err)
	}
	screen := hal.ScreenConfig{
		Width:    canvas.Width,
		Height:   canvas.Height,
		Snapshot: out,
		Log:      cmd.ErrOrStderr(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch backend {
	case "window":
		err = hal.RunWindow(hal.WindowConfig{ScreenConfig: screen, Title: sc.Title(), Scale: scale},
			func(h hal.HAL) func() error { return app.New(h, cfg) })
	case "headless":
		cfg.ExitWhenDone = true
		err = hal.RunHeadless(ctx, func(h hal.HAL) func() error { return app.New(h, cfg) },
			hal.HeadlessConfig{ScreenConfig: screen})
	case "term":
		err = hal.RunTerminal(ctx, func(h hal.HAL) func() error { return app.New(h, cfg) },
			hal.TerminalConfig{ScreenConfig: screen})
	default:
		return fmt.Errorf("unknown backend %q (want window, headless or term)", backend)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}

	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, metrics); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func dryRun(cmd *cobra.Command, sc scene.Scene, seed int64) error {
	rec := turtle.NewRecorder()
	if err := sc.Draw(rec, fractal.NewRand(seed)); err != nil {
		return err
	}
	if err := rec.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: seed %d, %d primitives, %d strokes, %d stars, %d leaves\n",
		sc.Name(), seed, len(rec.Ops), rec.Strokes(), rec.Count(turtle.OpFillCircle), rec.Count(turtle.OpStamp))
	return nil
}
