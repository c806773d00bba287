package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw writes the grid onto a terminal screen, centred in area. Cells that
// fall outside area are clipped.
func (g *Grid) Draw(scr uv.Screen, area uv.Rectangle) {
	ox, oy := g.origin(area.Min.X, area.Min.Y, area.Max.X-area.Min.X, area.Max.Y-area.Min.Y)
	bg := rgbaToColor(g.Background)

	for y := 0; y < g.Rows; y++ {
		row := oy + y
		if row < area.Min.Y || row >= area.Max.Y {
			continue
		}
		for x := 0; x < g.Cols; x++ {
			col := ox + x
			if col < area.Min.X || col >= area.Max.X {
				continue
			}
			c := g.Cells[y*g.Cols+x]
			scr.SetCell(col, row, &uv.Cell{
				Content: string(c.Glyph),
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(c.Color),
					Bg: bg,
				},
			})
		}
	}
}

// origin returns the top-left screen position that centres the grid in a
// w by h area starting at (x, y). It may be negative when the grid is
// larger than the area.
func (g *Grid) origin(x, y, w, h int) (int, int) {
	return x + (w-g.Cols)/2, y + (h-g.Rows)/2
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
