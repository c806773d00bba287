package render

import (
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/palette"
)

// MaxTAA caps the history weight so the image always converges.
const MaxTAA = 0.95

// Options controls how samples become glyphs and colours.
type Options struct {
	Ramp      []rune // emptiest first
	Invert    bool
	Color     bool
	Mode      ColorMode
	Palette   palette.Palette
	TAA       bool
	TAAAmount float64 // weight of the previous frame

	Background color.RGBA // passed through to the grid
}

// Frame describes one compositing pass.
type Frame struct {
	Cols, Rows   int
	CellW, CellH float64 // cell pitch, used for the aspect ratio
	Index        int     // frame counter driving the sub-pixel jitter
	Camera       Basis
	Engine       *Engine
	Options
}

// Compositor turns engine samples into a glyph grid and owns the temporal
// history buffers. Buffers always match the current grid size: a size
// change reallocates them before any cell is read.
type Compositor struct {
	// Workers bounds how many rows render concurrently. Zero means
	// GOMAXPROCS.
	Workers int

	cols, rows int
	prevLuma   []float64
	prevRGB    []float64 // 3 per cell, in [0,1]
	momentum   []float64
	fresh      bool // history holds no valid previous frame
	grid       *Grid
}

// NewCompositor creates a compositor with no grid allocated.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Size returns the current grid dimensions.
func (c *Compositor) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Resize reallocates the grid and history buffers and discards history.
func (c *Compositor) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	n := cols * rows
	c.cols, c.rows = cols, rows
	c.prevLuma = make([]float64, n)
	c.prevRGB = make([]float64, n*3)
	c.momentum = make([]float64, n)
	c.grid = NewGrid(cols, rows)
	c.fresh = true
	logging.Logger().Debug("grid reallocated", "cols", cols, "rows", rows)
}

// Invalidate discards temporal history without reallocating.
func (c *Compositor) Invalidate() {
	c.fresh = true
}

// History returns the stored state of cell (x, y) after the last pass.
func (c *Compositor) History(x, y int) (luma, momentum float64, rgb [3]float64) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return 0, 0, rgb
	}
	i := y*c.cols + x
	copy(rgb[:], c.prevRGB[i*3:i*3+3])
	return c.prevLuma[i], c.momentum[i], rgb
}

// pass holds the per-frame constants shared by every row.
type pass struct {
	*Frame
	aspect   float64
	blend    float64
	ox, oy   float64
	bound    BoundingSphere
	bounded  bool
	fallback rune
}

// Render composes one frame and returns the grid. The returned grid is
// reused by the next call.
func (c *Compositor) Render(f *Frame) *Grid {
	if c.grid == nil || f.Cols != c.cols || f.Rows != c.rows {
		c.Resize(f.Cols, f.Rows)
	}
	c.grid.CellW, c.grid.CellH = f.CellW, f.CellH
	c.grid.Background = f.Background

	p := pass{Frame: f, fallback: ' '}
	cellW, cellH := f.CellW, f.CellH
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 1, 1
	}
	p.aspect = (float64(c.cols) * cellW) / (float64(c.rows) * cellH)
	if f.TAA {
		p.blend = math3d.Clamp(f.TAAAmount, 0, MaxTAA)
		p.ox = (Halton(f.Index, 2) - 0.5) / float64(c.cols)
		p.oy = (Halton(f.Index, 3) - 0.5) / float64(c.rows)
	}
	if c.fresh {
		p.blend = 0
	}
	if r, ok := f.Engine.Scene.Bound(); ok {
		p.bound = BoundingSphere{Radius: r}
		p.bounded = true
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < c.rows; j++ {
		g.Go(func() error {
			c.renderRow(&p, j)
			return nil
		})
	}
	_ = g.Wait()

	c.fresh = false
	return c.grid
}

func (c *Compositor) renderRow(p *pass, j int) {
	cols, rows := c.cols, c.rows
	fresh := c.fresh
	ramp := p.Ramp
	n := len(ramp)
	v := ((float64(j)+0.5+p.oy)/float64(rows))*2 - 1

	for i := 0; i < cols; i++ {
		u := ((float64(i)+0.5+p.ox)/float64(cols))*2 - 1
		rd := p.Camera.Ray(u, v, p.aspect)
		s := p.Engine.Cast(p.Camera.Position, rd, p.bound, p.bounded)

		idx := j*cols + i
		prev := c.prevLuma[idx]
		if fresh {
			prev = 0
		}
		blended := math3d.Mix(s.Luma, prev, p.blend)
		mom := math.Abs(s.Luma - prev)
		c.momentum[idx] = mom
		c.prevLuma[idx] = blended

		rgb := c.prevRGB[idx*3 : idx*3+3]
		if s.Culled {
			rgb[0], rgb[1], rgb[2] = 0, 0, 0
			c.grid.Set(i, j, Cell{Glyph: p.fallback})
			continue
		}

		tone := blended
		if p.Invert && s.Hit {
			tone = 1 - blended
		}
		k := GlyphIndex(tone, Bayer(i, j), n)
		glyph := p.fallback
		if k < n {
			glyph = ramp[k]
		}

		cell := Cell{Glyph: glyph}
		if p.Color {
			cell.Color = p.Palette.Color(p.Mode.Channel(s, blended, mom))
			rgb[0] = float64(cell.Color.R) / 255
			rgb[1] = float64(cell.Color.G) / 255
			rgb[2] = float64(cell.Color.B) / 255
		} else {
			rgb[0], rgb[1], rgb[2] = 0, 0, 0
		}
		c.grid.Set(i, j, cell)
	}
}
