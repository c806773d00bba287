package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// DrawTcell writes the grid onto a tcell screen, centred and clipped to
// the screen size. It does not call Show.
func (g *Grid) DrawTcell(scr tcell.Screen) {
	w, h := scr.Size()
	ox, oy := g.origin(0, 0, w, h)
	base := tcell.StyleDefault
	if g.Background.A != 0 {
		base = base.Background(tcellColor(g.Background))
	}

	for y := 0; y < g.Rows; y++ {
		row := oy + y
		if row < 0 || row >= h {
			continue
		}
		for x := 0; x < g.Cols; x++ {
			col := ox + x
			if col < 0 || col >= w {
				continue
			}
			c := g.Cells[y*g.Cols+x]
			style := base
			if c.Color.A != 0 {
				style = style.Foreground(tcellColor(c.Color))
			}
			scr.SetContent(col, row, c.Glyph, nil, style)
		}
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
