// asciimarch - ASCII Signed-Distance-Field Raymarcher
// Renders animated distance-field shapes in the terminal as shaded glyphs.
//
// Controls:
//
//	Mouse drag  - Rotate shape
//	Scroll      - Zoom in/out
//	W/S         - Rotate about X
//	A/D         - Rotate about Z
//	Q/E         - Zoom out/in
//	Arrows      - Orbit camera
//	R           - Reset camera
//	Tab         - Next shape
//	C/P/G       - Next colour mode, palette, glyph ramp
//	I/N/T       - Toggle invert, noise, temporal blending
//	Space       - Toggle auto-spin
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/asciimarch/pkg/config"
	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/render"
)

var version = "dev"

// options are the flags shared by every command.
type options struct {
	configPath string
	shape      string
	palette    string
	mode       string
	ramp       string
	chars      string
	fps        int
	noColor    bool
	noAdaptive bool
	backend    string
	logPath    string
	debug      bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, rootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "asciimarch",
		Short: "Raymarch distance-field shapes as ASCII art in the terminal",
		Long: "asciimarch sphere-traces animated signed-distance-field shapes and " +
			"draws them as dithered, coloured glyphs with temporal smoothing.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runViewer(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "JSON settings file")
	f.StringVar(&opts.shape, "shape", "", "shape to draw (e.g. torus, heart, star)")
	f.StringVar(&opts.palette, "palette", "", "colour palette (grayscale, fire, ice, rainbow, viridis, gameboy, nes, sega, retro)")
	f.StringVar(&opts.mode, "mode", "", "colour mode (luma, depth, normal, specular, momentum, hue, fresnel, steps, position, ao)")
	f.StringVar(&opts.ramp, "ramp", "", "glyph ramp preset (dense, classic, blocks, dots, binary, sparse, line, blocky, retro)")
	f.StringVar(&opts.chars, "chars", "", "custom glyph ramp, emptiest first")
	f.IntVar(&opts.fps, "fps", 50, "target frame rate, overriding the config file")
	f.BoolVar(&opts.noColor, "no-color", false, "draw monochrome glyphs")
	f.BoolVar(&opts.noAdaptive, "no-adaptive", false, "disable adaptive resolution")
	f.StringVar(&opts.logPath, "log", "", "write logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "log debug messages")
	cmd.Flags().StringVar(&opts.backend, "backend", "uv", "terminal backend (uv or tcell)")

	cmd.AddCommand(snapshotCmd(opts), printCmd(opts), initConfigCmd(opts))
	return cmd
}

func (o *options) setupLogging() error {
	if o.logPath == "" {
		return nil
	}
	f, err := os.OpenFile(o.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return nil
}

// load reads the settings file, if any, and applies flag overrides.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	var errs []error
	if o.shape != "" {
		s, err := config.ParseShape(o.shape)
		errs = append(errs, err)
		cfg.Shape = s
	}
	if o.palette != "" {
		p, err := config.ParsePalette(o.palette)
		errs = append(errs, err)
		cfg.Palette = p
	}
	if o.mode != "" {
		m, err := config.ParseColorMode(o.mode)
		errs = append(errs, err)
		cfg.ColorMode = m
	}
	if o.ramp != "" {
		r, err := config.ParseRamp(o.ramp)
		errs = append(errs, err)
		cfg.SetPreset(r)
	}
	if o.chars != "" {
		cfg.AsciiChars = o.chars
	}
	if cmd.Flags().Changed("fps") {
		cfg.TargetFPS = float64(o.fps)
	}
	if o.noColor {
		cfg.Color = false
	}
	if o.noAdaptive {
		cfg.Adaptive = false
	}
	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	if o.fps <= 0 {
		return cfg, fmt.Errorf("fps must be positive, got %d", o.fps)
	}

	cfg.Sanitize()
	return cfg, nil
}

func runViewer(ctx context.Context, cfg config.Config, opts *options) error {
	app := NewApp(config.NewStore(cfg), render.TerminalMetrics{})
	switch opts.backend {
	case "uv":
		return runUV(ctx, app)
	case "tcell":
		return runTcell(ctx, app)
	}
	return fmt.Errorf("unknown backend %q (use uv or tcell)", opts.backend)
}
