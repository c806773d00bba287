// Package palette maps scalar channels to colours and tones to glyphs.
//
// Palettes are pure functions from t in [0,1] to an opaque RGB colour.
// Ramps are ordered glyph sequences, emptiest first.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/math3d"
)

// Palette names a scalar-to-colour mapping.
type Palette int

const (
	Grayscale Palette = iota
	Fire
	Ice
	Rainbow
	Viridis
	Gameboy
	NES
	Sega
	Retro
	numPalettes
)

var paletteNames = [numPalettes]string{
	Grayscale: "grayscale",
	Fire:      "fire",
	Ice:       "ice",
	Rainbow:   "rainbow",
	Viridis:   "viridis",
	Gameboy:   "gameboy",
	NES:       "nes",
	Sega:      "sega",
	Retro:     "retro",
}

// Palettes lists every palette in cycling order.
func Palettes() []Palette {
	out := make([]Palette, numPalettes)
	for i := range out {
		out[i] = Palette(i)
	}
	return out
}

func (p Palette) String() string {
	if p < 0 || p >= numPalettes {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteNames[p]
}

// Next returns the following palette, wrapping at the end.
func (p Palette) Next() Palette {
	return (p + 1) % numPalettes
}

// Parse resolves a palette name, ignoring case.
func Parse(name string) (Palette, bool) {
	for i, n := range paletteNames {
		if strings.EqualFold(n, name) {
			return Palette(i), true
		}
	}
	return Grayscale, false
}

func (p Palette) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText keeps the current palette when the name is unknown.
func (p *Palette) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		logging.Logger().Warn("unknown palette, keeping previous", "name", string(text), "palette", p.String())
		return nil
	}
	*p = v
	return nil
}

// Color maps t (clamped to [0,1]) to an opaque colour. Out-of-range
// palettes fall back to grayscale.
func (p Palette) Color(t float64) color.RGBA {
	t = math3d.Clamp(t, 0, 1)
	var c colorful.Color
	switch p {
	case Fire:
		c = fire.at(t)
	case Ice:
		c = rgb255(10+40*t, 50+170*t, 90+165*t)
	case Rainbow:
		c = colorful.Hsv(math.Mod(t*360, 360), 1, 1)
	case Viridis:
		c = rgb255(68+167*t-39*t*t, 1+198*t-75*t*t, 84+77*t+90*t*t)
	case Gameboy:
		c = gameboyShades[min(len(gameboyShades)-1, int(t*float64(len(gameboyShades))))]
	case NES:
		c = nesStops.at(t)
	case Sega:
		c = sega.at(t)
	case Retro:
		c = rgb255(80+160*t, 60+120*t, 45+80*t)
	default:
		c = colorful.Color{R: t, G: t, B: t}
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgb255(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}

// segment blends linearly from A to B over [Lo, Hi).
type segment struct {
	Lo, Hi float64
	A, B   colorful.Color
}

// piecewise is a gradient made of possibly discontinuous segments in
// ascending order. The last segment absorbs t beyond its end.
type piecewise []segment

func (pw piecewise) at(t float64) colorful.Color {
	for i, s := range pw {
		if t < s.Hi || i == len(pw)-1 {
			f := (t - s.Lo) / (s.Hi - s.Lo)
			return s.A.BlendRgb(s.B, math3d.Clamp(f, 0, 1))
		}
	}
	return colorful.Color{}
}

var fire = piecewise{
	{0, 0.3, rgb255(0, 0, 0), rgb255(180, 0, 0)},
	{0.3, 0.6, rgb255(180, 0, 0), rgb255(255, 90, 0)},
	{0.6, 0.85, rgb255(255, 180, 0), rgb255(255, 250, 0)},
	{0.85, 1, rgb255(255, 250, 0), rgb255(255, 250, 255)},
}

var sega = piecewise{
	{0, 0.33, rgb255(16, 48, 128), rgb255(18, 216, 255)},
	{0.33, 0.66, rgb255(18, 216, 255), rgb255(220, 12, 200)},
	{0.66, 1, rgb255(220, 12, 200), rgb255(255, 200, 240)},
}

var gameboyShades = [...]colorful.Color{
	rgb255(15, 56, 15),
	rgb255(48, 98, 48),
	rgb255(139, 172, 15),
	rgb255(155, 188, 15),
}

// stops is an evenly spaced gradient.
type stops []colorful.Color

func (s stops) at(t float64) colorful.Color {
	x := t * float64(len(s)-1)
	i := int(x)
	j := min(len(s)-1, i+1)
	return s[i].BlendRgb(s[j], x-float64(i))
}

var nesStops = stops{
	rgb255(27, 27, 53),
	rgb255(63, 92, 170),
	rgb255(139, 131, 94),
	rgb255(177, 103, 58),
	rgb255(212, 157, 68),
	rgb255(230, 202, 139),
	rgb255(201, 201, 201),
	rgb255(120, 150, 180),
}
