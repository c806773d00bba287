package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// WriteANSI writes the grid as text, one line per row, with SGR colour
// sequences for coloured cells. Every line ends with a style reset.
func (g *Grid) WriteANSI(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bgSeq := ""
	if g.Background.A != 0 {
		bgSeq = ansi.Style{}.BackgroundColor(g.Background).String()
	}

	for y := 0; y < g.Rows; y++ {
		bw.WriteString(bgSeq)
		var cur color.RGBA
		for _, c := range g.Cells[y*g.Cols : (y+1)*g.Cols] {
			if c.Color != cur {
				if c.Color.A == 0 {
					bw.WriteString(ansi.ResetStyle)
					bw.WriteString(bgSeq)
				} else {
					bw.WriteString(ansi.Style{}.ForegroundColor(c.Color).String())
				}
				cur = c.Color
			}
			bw.WriteRune(c.Glyph)
		}
		bw.WriteString(ansi.ResetStyle)
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	return nil
}
