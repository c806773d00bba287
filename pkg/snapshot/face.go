// Package snapshot draws composed frames onto an image with a monospaced
// OpenType face and encodes them as PNG or WebP.
package snapshot

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a glyph face plus the cell geometry measured from it.
type Face struct {
	font.Face
	Size     float64
	CellW    int
	CellH    int
	Baseline int // distance from the cell top to the glyph baseline
}

// Metrics measures glyph cells of the bundled Go Mono font. It implements
// render.FontMetrics.
type Metrics struct {
	font *opentype.Font
}

// NewMetrics parses the bundled font.
func NewMetrics() (*Metrics, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Metrics{font: f}, nil
}

// Face opens a face at size pixels per em. The caller must Close it.
func (m *Metrics) Face(size float64) (*Face, error) {
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("open face: %w", err)
	}

	w, h, base := measure(f, size)
	return &Face{Face: f, Size: size, CellW: w, CellH: h, Baseline: base}, nil
}

// CellSize returns the glyph cell for size. A face that fails to open
// falls back to the usual 0.6 by 1.2 em cell.
func (m *Metrics) CellSize(size float64) (w, h float64) {
	f, err := m.Face(size)
	if err != nil {
		return math.Ceil(size * 0.6), math.Ceil(size * 1.2)
	}
	defer f.Close()
	return float64(f.CellW), float64(f.CellH)
}

// measure sizes a cell the way a browser canvas would: the width of a full
// block, and the line height from the face ascent and descent.
func measure(f font.Face, size float64) (w, h, baseline int) {
	adv, ok := f.GlyphAdvance('█')
	if !ok {
		adv, _ = f.GlyphAdvance('M')
	}
	w = ceil26(adv)

	m := f.Metrics()
	h = ceil26(m.Ascent + m.Descent)
	if b, _, ok := f.GlyphBounds('M'); ok {
		baseline = ceil26(-b.Min.Y)
	} else {
		baseline = int(math.Ceil(size * 0.8))
	}
	baseline = max(baseline, ceil26(m.Ascent))
	return max(w, 1), max(h, 1), baseline
}

func ceil26(v fixed.Int26_6) int {
	return int(v+63) >> 6
}
