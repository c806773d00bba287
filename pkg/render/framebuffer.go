package render

import (
	"image/color"
	"strings"
)

// Cell is one character position of the output grid.
type Cell struct {
	Glyph rune
	Color color.RGBA // A == 0 means draw with the surface default
}

// Grid is the composed frame: a row-major array of glyph cells plus the
// cell pitch the drawing surface should lay them out at.
type Grid struct {
	Cols  int
	Rows  int
	CellW float64 // glyph cell width in surface units
	CellH float64 // glyph cell height in surface units
	Cells []Cell

	// Background fills every cell when A != 0.
	Background color.RGBA
}

// NewGrid creates a grid of blank cells.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		CellW: 1,
		CellH: 2,
		Cells: make([]Cell, cols*rows),
	}
	g.Clear()
	return g
}

// Clear fills the grid with uncoloured spaces.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = Cell{Glyph: ' '}
	}
}

// Set stores a cell at (x, y). Bounds checking is performed.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		return
	}
	g.Cells[y*g.Cols+x] = c
}

// At returns the cell at (x, y), or a blank cell if out of bounds.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		return Cell{Glyph: ' '}
	}
	return g.Cells[y*g.Cols+x]
}

// Row returns the glyphs of row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.Rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.Cells[y*g.Cols : (y+1)*g.Cols] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// String returns the glyphs of the whole grid, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Row(y))
	}
	return sb.String()
}

// PixelSize returns the surface extent of the grid in surface units.
func (g *Grid) PixelSize() (w, h int) {
	return int(float64(g.Cols) * g.CellW), int(float64(g.Rows) * g.CellH)
}
