package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/taigrr/asciimarch/pkg/config"
	"github.com/taigrr/asciimarch/pkg/render"
	"github.com/taigrr/asciimarch/pkg/snapshot"
)

// headless renders frames warm-up frames at a fixed step with adaptive
// resolution off, so temporal blending converges deterministically.
func headless(cfg config.Config, metrics render.FontMetrics, w, h float64, frames int) *render.Grid {
	cfg.Adaptive = false
	app := NewApp(config.NewStore(cfg), metrics)
	app.SetSurface(w, h)

	step := app.Interval()
	now := time.Unix(0, 0)
	var g *render.Grid
	for range max(frames, 1) {
		g, _ = app.Step(now)
		now = now.Add(step)
	}
	return g
}

func snapshotCmd(opts *options) *cobra.Command {
	var (
		width, height int
		frames        int
	)
	cmd := &cobra.Command{
		Use:   "snapshot <out.png|out.webp>",
		Short: "Render frames headless and save the last one as an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if _, err := snapshot.FormatFor(args[0]); err != nil {
				return err
			}

			metrics, err := snapshot.NewMetrics()
			if err != nil {
				return err
			}
			face, err := metrics.Face(cfg.FontSize)
			if err != nil {
				return err
			}
			defer face.Close()

			g := headless(cfg, metrics, float64(width), float64(height), frames)
			if err := snapshot.WriteFile(args[0], g, face); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d cells)\n", args[0], g.Cols, g.Rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 1280, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "image height in pixels")
	cmd.Flags().IntVar(&frames, "frames", 30, "warm-up frames before capture")
	return cmd
}

func printCmd(opts *options) *cobra.Command {
	var (
		cols, rows int
		frames     int
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render one frame as ANSI text on stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			g := headless(cfg, render.TerminalMetrics{}, float64(cols), float64(rows)*2, frames)
			w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
			return g.WriteANSI(w)
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 80, "columns")
	cmd.Flags().IntVar(&rows, "rows", 24, "rows")
	cmd.Flags().IntVar(&frames, "frames", 20, "warm-up frames before printing")
	return cmd
}

func initConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the settings, with any flag overrides, to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return cfg.Save(args[0])
		},
	}
}
