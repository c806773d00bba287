package render

import (
	"math"
)

// ViewportState orders the work needed before the next frame can render.
// Font metrics are measured before grid dimensions are derived from them,
// and dimensions are derived before history buffers are reallocated.
type ViewportState int

const (
	Clean ViewportState = iota
	NeedsFontMetrics
	NeedsResize
)

func (s ViewportState) String() string {
	switch s {
	case Clean:
		return "clean"
	case NeedsFontMetrics:
		return "needs-font-metrics"
	case NeedsResize:
		return "needs-resize"
	}
	return "unknown"
}

// FontMetrics measures the glyph cell of a monospaced face.
type FontMetrics interface {
	CellSize(fontSize float64) (w, h float64)
}

// TerminalMetrics treats one terminal cell as 1x2 surface units, so a
// terminal of C columns and R rows is a C by 2R surface.
type TerminalMetrics struct{}

func (TerminalMetrics) CellSize(float64) (w, h float64) { return 1, 2 }

// Grid size floors.
const (
	MinCols = 8
	MinRows = 6
)

// Viewport derives grid dimensions from the drawing surface, the glyph
// cell size and the resolution scale.
type Viewport struct {
	metrics  FontMetrics
	state    ViewportState
	width    float64
	height   float64
	fontSize float64
	resScale float64
	cellW    float64
	cellH    float64
	cols     int
	rows     int
}

// NewViewport creates a viewport that will measure fonts on first Update.
func NewViewport(m FontMetrics) *Viewport {
	if m == nil {
		m = TerminalMetrics{}
	}
	return &Viewport{
		metrics:  m,
		state:    NeedsFontMetrics,
		fontSize: 14,
		resScale: 1,
		cellW:    8,
		cellH:    16,
	}
}

// State returns the pending work.
func (v *Viewport) State() ViewportState {
	return v.state
}

// require raises the pending work to s. NeedsFontMetrics already implies a
// resize and is never downgraded.
func (v *Viewport) require(s ViewportState) {
	if v.state != NeedsFontMetrics {
		v.state = s
	}
}

// SetSurface records the drawing surface size in surface units.
func (v *Viewport) SetSurface(w, h float64) {
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	v.require(NeedsResize)
}

// SetFontSize records the glyph size; a change remeasures the cell.
func (v *Viewport) SetFontSize(size float64) {
	if size == v.fontSize {
		return
	}
	v.fontSize = size
	v.require(NeedsFontMetrics)
}

// SetResScale records the resolution scale.
func (v *Viewport) SetResScale(s float64) {
	if s == v.resScale {
		return
	}
	v.resScale = s
	v.require(NeedsResize)
}

// Invalidate forces a resize on the next Update.
func (v *Viewport) Invalidate() {
	v.require(NeedsResize)
}

// Update performs any pending transitions and returns the grid size.
// resized is true when the caller must reallocate its grid buffers.
func (v *Viewport) Update() (cols, rows int, resized bool) {
	if v.state == NeedsFontMetrics {
		v.cellW, v.cellH = v.metrics.CellSize(v.fontSize)
		if v.cellW <= 0 || v.cellH <= 0 {
			v.cellW, v.cellH = 1, 2
		}
		v.state = NeedsResize
	}
	if v.state == NeedsResize {
		v.cols, v.rows = GridSize(v.width, v.height, v.cellW, v.cellH, v.resScale)
		v.state = Clean
		resized = true
	}
	return v.cols, v.rows, resized
}

// CellSize returns the current glyph cell size.
func (v *Viewport) CellSize() (w, h float64) {
	return v.cellW, v.cellH
}

// GridSize computes the grid dimensions for a surface of w by h units,
// cells of cw by ch units and resolution scale s.
func GridSize(w, h, cw, ch, s float64) (cols, rows int) {
	baseCols := max(MinCols, int(math.Floor(w/cw)))
	baseRows := max(MinRows, int(math.Floor(h/ch)))
	cols = max(MinCols, int(math.Floor(float64(baseCols)*s)))
	rows = max(MinRows, int(math.Floor(float64(baseRows)*s)))
	return cols, rows
}
