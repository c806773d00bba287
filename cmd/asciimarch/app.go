package main

import (
	"math"
	"time"

	"github.com/taigrr/asciimarch/pkg/adaptive"
	"github.com/taigrr/asciimarch/pkg/config"
	"github.com/taigrr/asciimarch/pkg/render"
)

// App drives one viewer session: it owns the grid history, the resize state
// machine, the adaptive controller and the input controls. Settings live in
// the store; every change goes through Store.Update.
type App struct {
	Store    *config.Store
	Controls *Controls
	ShowHUD  bool

	viewport   *render.Viewport
	compositor *render.Compositor
	adaptive   *adaptive.Controller

	frame int
	time  float64 // scene seconds
	last  time.Time
	grid  *render.Grid
}

// NewApp creates a session drawing on a surface measured by metrics. The
// store's target frame rate paces both the controls and the adaptive
// controller.
func NewApp(store *config.Store, metrics render.FontMetrics) *App {
	cfg := store.Snapshot()
	fps := max(int(math.Round(cfg.TargetFPS)), 1)
	a := &App{
		Store:      store,
		Controls:   NewControls(fps, *cfg.Cam()),
		viewport:   render.NewViewport(metrics),
		compositor: render.NewCompositor(),
		adaptive:   adaptive.New(cfg.TargetFPS),
	}
	a.viewport.SetFontSize(cfg.FontSize)
	a.viewport.SetResScale(cfg.ResScale)
	return a
}

// SetSurface records the drawing surface size in surface units.
func (a *App) SetSurface(w, h float64) {
	a.viewport.SetSurface(w, h)
}

// Invalidate discards temporal history, for example after a screen clear.
func (a *App) Invalidate() {
	a.compositor.Invalidate()
}

// Interval returns the frame period for the configured target rate.
func (a *App) Interval() time.Duration {
	fps := a.Store.Snapshot().TargetFPS
	if fps <= 0 {
		fps = config.Default().TargetFPS
	}
	return time.Duration(float64(time.Second) / fps)
}

// FPS returns the smoothed frame rate.
func (a *App) FPS() float64 {
	return a.adaptive.FPS()
}

// Size returns the current grid size.
func (a *App) Size() (cols, rows int) {
	return a.compositor.Size()
}

// Step renders one frame at now. resized reports that the grid was
// reallocated and the surface should be cleared before drawing.
func (a *App) Step(now time.Time) (g *render.Grid, resized bool) {
	dt := adaptive.MinDT
	if !a.last.IsZero() {
		dt = a.adaptive.Observe(now.Sub(a.last))
	}
	a.last = now
	a.time += dt

	cfg := a.Store.Update(func(c *config.Config) {
		c.Spin()
		a.Controls.Update(dt, c)
	})

	a.viewport.SetFontSize(cfg.FontSize)
	a.viewport.SetResScale(cfg.ResScale)
	cols, rows, resized := a.viewport.Update()
	if resized {
		a.compositor.Resize(cols, rows)
	}

	cw, ch := a.viewport.CellSize()
	a.frame++
	a.grid = a.compositor.Render(cfg.Frame(cols, rows, a.frame, cw, ch, a.time))

	a.adaptive.Enabled = cfg.Adaptive
	a.adaptive.Target = cfg.TargetFPS
	k := adaptive.Knobs{ResScale: cfg.ResScale, Octaves: cfg.Noise.Octaves}
	if d := a.adaptive.Tick(&k, cfg.Noise.Enabled); d.ScaleChanged || d.OctavesChanged {
		a.Store.Update(func(c *config.Config) {
			c.ResScale = k.ResScale
			c.Noise.Octaves = k.Octaves
		})
	}
	return a.grid, resized
}

// Do applies a discrete action. It reports false when the session should
// end.
func (a *App) Do(act Action) bool {
	if act == ActionToggleHUD {
		a.ShowHUD = !a.ShowHUD
		return true
	}
	keep := true
	a.Store.Update(func(c *config.Config) {
		keep = a.Controls.Do(act, c)
	})
	return keep
}

// Drag forwards pointer motion to the controls.
func (a *App) Drag(x, y int) {
	a.Store.Update(func(c *config.Config) {
		a.Controls.MouseMove(x, y, c)
	})
}
