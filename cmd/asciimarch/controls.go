package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/asciimarch/pkg/config"
	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/render"
)

// Action is one discrete input command, independent of the terminal
// backend that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionNextShape
	ActionNextMode
	ActionNextPalette
	ActionNextRamp
	ActionToggleInvert
	ActionToggleNoise
	ActionToggleTAA
	ActionToggleSpin
	ActionToggleHUD
)

// Hold is a key whose effect lasts while it is held down.
type Hold int

const (
	HoldRotXNeg Hold = iota // W
	HoldRotXPos             // S
	HoldRotZNeg             // A
	HoldRotZPos             // D
	HoldZoomOut             // Q
	HoldZoomIn              // E
	numHolds
)

const (
	keySpeed     = 0.8 // radians (or units) per second while a key is held
	holdDecay    = 0.9 // per frame, until the terminal reports a key release
	orbitStep    = 0.1 // radians per arrow press
	degPerPixel  = 0.004 * 180 / math.Pi
	cellPixelsX  = 8 // assumed pixel pitch of a terminal cell
	cellPixelsY  = 16
	dragGain     = 0.35 // fraction of a drag that carries on as spin
	wheelDelta   = 100  // pixels per wheel notch
	wheelZoomExp = 0.0012
)

// RotationAxis tracks velocity for one rotation axis with spring decay.
type RotationAxis struct {
	Velocity  float64 // degrees per frame
	velSpring harmonica.Spring
	velAccel  float64
}

// NewRotationAxis creates an axis whose velocity decays critically damped.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns this frame's rotation and decays the velocity toward 0.
func (a *RotationAxis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// Follower chases a target value with a spring.
type Follower struct {
	Value  float64
	vel    float64
	spring harmonica.Spring
}

// NewFollower creates a follower resting at v.
func NewFollower(fps int, v float64) Follower {
	return Follower{
		Value:  v,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update moves one frame toward target.
func (f *Follower) Update(target float64) float64 {
	f.Value, f.vel = f.spring.Update(f.Value, f.vel, target)
	return f.Value
}

// Controls turns key, drag and wheel input into settings changes. Camera
// moves set a target that the spring-smoothed camera glides to, and drags
// leave the object spinning briefly after release.
type Controls struct {
	fps    int
	target render.Camera
	yaw    Follower
	pitch  Follower
	dist   Follower
	spinX  RotationAxis
	spinY  RotationAxis

	held [numHolds]float64
	// releases is set once a key release arrives; held keys then stay
	// down until released instead of fading.
	releases bool

	dragging     bool
	lastX, lastY int
}

// NewControls starts the smoothed camera at cam.
func NewControls(fps int, cam render.Camera) *Controls {
	return &Controls{
		fps:    fps,
		target: cam,
		yaw:    NewFollower(fps, cam.Yaw),
		pitch:  NewFollower(fps, cam.Pitch),
		dist:   NewFollower(fps, cam.Dist),
		spinX:  NewRotationAxis(fps),
		spinY:  NewRotationAxis(fps),
	}
}

// Target returns the camera the smoothed camera is heading to.
func (c *Controls) Target() render.Camera {
	return c.target
}

// Press marks a held key as down.
func (c *Controls) Press(h Hold) {
	c.held[h] = 1
}

// Release marks a held key as up.
func (c *Controls) Release(h Hold) {
	c.held[h] = 0
	c.releases = true
}

// Do applies a discrete action to the settings. It reports false for
// ActionQuit.
func (c *Controls) Do(a Action, cfg *config.Config) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionReset:
		c.target.Reset()
		c.spinX, c.spinY = NewRotationAxis(c.fps), NewRotationAxis(c.fps)
	case ActionOrbitLeft:
		c.target.Orbit(-orbitStep, 0)
	case ActionOrbitRight:
		c.target.Orbit(orbitStep, 0)
	case ActionOrbitUp:
		c.target.Orbit(0, orbitStep)
	case ActionOrbitDown:
		c.target.Orbit(0, -orbitStep)
	case ActionNextShape:
		cfg.Shape = cfg.Shape.Next()
	case ActionNextMode:
		cfg.ColorMode = cfg.ColorMode.Next()
	case ActionNextPalette:
		cfg.Palette = cfg.Palette.Next()
	case ActionNextRamp:
		cfg.SetPreset(cfg.Preset.Next())
	case ActionToggleInvert:
		cfg.Invert = !cfg.Invert
	case ActionToggleNoise:
		cfg.Noise.Enabled = !cfg.Noise.Enabled
	case ActionToggleTAA:
		cfg.TAA = !cfg.TAA
	case ActionToggleSpin:
		cfg.AutoSpin = !cfg.AutoSpin
	}
	return true
}

// MouseDown starts a drag at cell (x, y).
func (c *Controls) MouseDown(x, y int) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// MouseUp ends a drag.
func (c *Controls) MouseUp() {
	c.dragging = false
}

// MouseMove rotates the object while dragging.
func (c *Controls) MouseMove(x, y int, cfg *config.Config) {
	if !c.dragging {
		return
	}
	dx := float64((x - c.lastX) * cellPixelsX)
	dy := float64((y - c.lastY) * cellPixelsY)
	c.lastX, c.lastY = x, y

	cfg.RotY = math3d.WrapDegrees(cfg.RotY + dx*degPerPixel)
	cfg.RotX = math3d.Clamp(cfg.RotX+dy*degPerPixel, -180, 180)
	c.spinY.Velocity += dx * degPerPixel * dragGain
	c.spinX.Velocity += dy * degPerPixel * dragGain
}

// Wheel zooms by scroll notches; scrolling down (positive) moves closer.
func (c *Controls) Wheel(notches int) {
	c.target.ZoomFactor(math.Exp(-float64(notches*wheelDelta) * wheelZoomExp))
}

// Update advances held keys, drag inertia and the camera springs by one
// frame of dt seconds.
func (c *Controls) Update(dt float64, cfg *config.Config) {
	speed := keySpeed * dt
	speedDeg := speed * 180 / math.Pi

	cfg.RotX = math3d.Clamp(cfg.RotX+(c.held[HoldRotXPos]-c.held[HoldRotXNeg])*speedDeg, -180, 180)
	cfg.RotZ = math3d.WrapDegrees(cfg.RotZ + (c.held[HoldRotZPos]-c.held[HoldRotZNeg])*speedDeg)
	if zoom := c.held[HoldZoomOut] - c.held[HoldZoomIn]; zoom != 0 {
		c.target.Zoom(zoom * speed * 2)
	}
	if !c.releases {
		for i := range c.held {
			c.held[i] *= holdDecay
			if c.held[i] < 0.01 {
				c.held[i] = 0
			}
		}
	}

	cfg.RotX = math3d.Clamp(cfg.RotX+c.spinX.Step(), -180, 180)
	cfg.RotY = math3d.WrapDegrees(cfg.RotY + c.spinY.Step())

	cfg.Camera.Yaw = c.yaw.Update(c.target.Yaw)
	cfg.Camera.Pitch = c.pitch.Update(c.target.Pitch)
	cfg.Camera.Dist = c.dist.Update(c.target.Dist)
}
