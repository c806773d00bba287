package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taigrr/asciimarch/pkg/config"
)

var (
	hudStyle   = lipgloss.NewStyle().Background(lipgloss.Color("0")).Padding(0, 1)
	fpsStyle   = hudStyle.Foreground(lipgloss.Color("10"))
	shapeStyle = hudStyle.Foreground(lipgloss.Color("15")).Bold(true)
	infoStyle  = hudStyle.Foreground(lipgloss.Color("14"))
	hintStyle  = hudStyle.Foreground(lipgloss.Color("11")).Faint(true)
)

const hudHint = "tab shape  c mode  p palette  g ramp  ? hide"

// hudFields returns the overlay items: frame rate, shape, and render state.
func hudFields(fps float64, cols, rows int, cfg config.Config) (rate, shape, info string) {
	rate = fmt.Sprintf("%.0f FPS", fps)
	shape = cfg.Shape.String()

	var flags []string
	if cfg.TAA {
		flags = append(flags, "taa")
	}
	if cfg.Noise.Enabled {
		flags = append(flags, fmt.Sprintf("noise x%d", cfg.Noise.Octaves))
	}
	if cfg.Invert {
		flags = append(flags, "inv")
	}
	info = fmt.Sprintf("%dx%d @%.2f  %s/%s/%s", cols, rows, cfg.ResScale, cfg.ColorMode, cfg.Palette, cfg.Preset)
	if len(flags) > 0 {
		info += "  " + strings.Join(flags, " ")
	}
	return rate, shape, info
}

// hudLine renders the styled overlay for a terminal of the given width.
func hudLine(fps float64, cols, rows int, cfg config.Config, width int) string {
	rate, shape, info := hudFields(fps, cols, rows, cfg)
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		fpsStyle.Render(rate),
		shapeStyle.Render(shape),
		infoStyle.Render(info),
	)
	if hint := hintStyle.Render(hudHint); lipgloss.Width(line)+lipgloss.Width(hint) <= width {
		line += strings.Repeat(" ", width-lipgloss.Width(line)-lipgloss.Width(hint)) + hint
	}
	return line
}

// hudPlain is the unstyled overlay.
func hudPlain(fps float64, cols, rows int, cfg config.Config) string {
	rate, shape, info := hudFields(fps, cols, rows, cfg)
	return " " + rate + "  " + shape + "  " + info + " "
}
