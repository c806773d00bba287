// Package adaptive keeps the renderer near a target frame rate by trading
// resolution and noise detail for speed.
package adaptive

import (
	"math"
	"time"

	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/noise"
)

// Controller tuning.
const (
	Interval     = 10 // frames between decisions
	MinDT        = 1.0 / 120
	emaWeight    = 0.1
	fallbackFPS  = 60 // seed when no target is set
	lowHeadroom  = -2 // fps below target that triggers a step down
	highHeadroom = 6  // fps above target that triggers a step up

	MinScale     = 0.5
	MaxScale     = 2.0
	scaleDown    = 0.05
	scaleUp      = 0.03
	scaleDownMin = 0.55 // no step down at or below this
	scaleUpMax   = 1.5  // no step up at or above this

	MinOctaves = 1
	MaxOctaves = noise.MaxOctaves
)

// Knobs are the two values the controller may tune.
type Knobs struct {
	ResScale float64
	Octaves  int
}

// Decision reports what one Tick changed.
type Decision struct {
	Checked        bool // this frame was a decision frame
	ScaleChanged   bool // the grid must be reallocated
	OctavesChanged bool
}

// Controller tracks a smoothed frame rate and decides quality changes.
// It is not safe for concurrent use.
type Controller struct {
	Target  float64 // frames per second
	Enabled bool

	fps   float64
	frame int
}

// New creates an enabled controller for the given target. The average
// starts at the target, so no change is made before real timings arrive.
func New(target float64) *Controller {
	fps := target
	if fps <= 0 {
		fps = fallbackFPS
	}
	return &Controller{
		Target:  target,
		Enabled: true,
		fps:     fps,
		frame:   1,
	}
}

// FPS returns the smoothed frame rate.
func (c *Controller) FPS() float64 {
	return c.fps
}

// Frame returns the counter of the next frame.
func (c *Controller) Frame() int {
	return c.frame
}

// Seed overrides the smoothed frame rate.
func (c *Controller) Seed(fps float64) {
	c.fps = fps
}

// Observe folds one frame's elapsed time into the average and returns the
// clamped step in seconds.
func (c *Controller) Observe(elapsed time.Duration) float64 {
	dt := math.Max(MinDT, elapsed.Seconds())
	c.fps = math3d.Mix(c.fps, 1/dt, emaWeight)
	return dt
}

// Tick ends a frame: every Interval frames it adjusts k according to the
// smoothed frame rate. noiseOn gates the octave loop.
func (c *Controller) Tick(k *Knobs, noiseOn bool) Decision {
	frame := c.frame
	c.frame++
	if !c.Enabled || frame%Interval != 0 {
		return Decision{}
	}

	d := Decision{Checked: true}
	headroom := c.fps - c.Target
	if s, ok := AdjustScale(k.ResScale, headroom); ok {
		logging.Logger().Info("resolution scale adjusted", "from", k.ResScale, "to", s, "fps", c.fps)
		k.ResScale = s
		d.ScaleChanged = true
	}
	if noiseOn {
		if o, ok := AdjustOctaves(k.Octaves, headroom); ok {
			logging.Logger().Info("noise octaves adjusted", "from", k.Octaves, "to", o, "fps", c.fps)
			k.Octaves = o
			d.OctavesChanged = true
		}
	}
	return d
}

// AdjustScale applies one resolution step for the given headroom.
func AdjustScale(scale, headroom float64) (float64, bool) {
	switch {
	case headroom < lowHeadroom && scale > scaleDownMin:
		return math.Max(MinScale, scale-scaleDown), true
	case headroom > highHeadroom && scale < scaleUpMax:
		return math.Min(MaxScale, scale+scaleUp), true
	}
	return scale, false
}

// AdjustOctaves applies one octave step for the given headroom.
func AdjustOctaves(oct int, headroom float64) (int, bool) {
	switch {
	case headroom < lowHeadroom && oct > MinOctaves:
		return max(MinOctaves, oct-1), true
	case headroom > highHeadroom && oct < MaxOctaves:
		return min(MaxOctaves, oct+1), true
	}
	return oct, false
}
