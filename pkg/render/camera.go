package render

import (
	"math"

	"github.com/taigrr/asciimarch/pkg/math3d"
)

// Camera distance limits for zooming.
const (
	MinCameraDist = 1.5
	MaxCameraDist = 24
)

// DefaultFOV is the vertical field of view (50 degrees).
var DefaultFOV = math3d.Radians(50)

// Camera orbits the origin at a fixed distance, looking at it.
type Camera struct {
	Dist  float64 // Distance from the origin
	Yaw   float64 // Rotation around Y axis in radians
	Pitch float64 // Elevation in radians
	FOV   float64 // Vertical field of view in radians
}

// NewCamera creates a camera six units out on the -Z axis.
func NewCamera() *Camera {
	return &Camera{
		Dist: 6,
		FOV:  DefaultFOV,
	}
}

// Basis is the orthonormal frame derived from a camera for one frame.
type Basis struct {
	Position math3d.Vec3
	Forward  math3d.Vec3
	Right    math3d.Vec3
	Up       math3d.Vec3
	TanFOV   float64 // tan(FOV/2)
}

// Forward returns the view direction.
func (c *Camera) Forward() math3d.Vec3 {
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	return math3d.V3(cp*sy, sp, cp*cy)
}

// Basis computes the camera frame. Every vector stays finite, even at a
// pitch of ±90 degrees where the right vector is undefined.
func (c *Camera) Basis() Basis {
	fwd := c.Forward()
	right := fwd.Cross(math3d.Up())
	if right.LenSq() < 1e-12 {
		// Looking straight up or down: take right from yaw alone.
		right = math3d.V3(-math.Cos(c.Yaw), 0, math.Sin(c.Yaw))
	}
	right = right.Normalize()
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	return Basis{
		Position: fwd.Scale(-c.Dist),
		Forward:  fwd.Normalize(),
		Right:    right,
		Up:       right.Cross(fwd),
		TanFOV:   math.Tan(fov * 0.5),
	}
}

// Ray returns the unit direction through normalized device coordinates
// (u, v) in [-1,1]; v grows downward like screen rows.
func (b Basis) Ray(u, v, aspect float64) math3d.Vec3 {
	return b.Forward.
		AddScaled(b.Right, u*b.TanFOV*aspect).
		AddScaled(b.Up, -v*b.TanFOV).
		Normalize()
}

// Orbit rotates the camera by the given angles (in radians).
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	// Clamp pitch to keep the basis well defined
	const maxPitch = math.Pi/2 - 0.01
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom moves the camera by delta units, clamped to the zoom range.
func (c *Camera) Zoom(delta float64) {
	c.Dist = math3d.Clamp(c.Dist+delta, MinCameraDist, MaxCameraDist)
}

// ZoomFactor scales the distance multiplicatively, clamped to the zoom range.
func (c *Camera) ZoomFactor(f float64) {
	c.Dist = math3d.Clamp(c.Dist*f, MinCameraDist, MaxCameraDist)
}

// Reset restores the default orbit, keeping the field of view.
func (c *Camera) Reset() {
	c.Dist, c.Yaw, c.Pitch = 6, 0, 0
}
