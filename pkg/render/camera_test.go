package render

import (
	"math"
	"testing"

	"github.com/taigrr/asciimarch/pkg/math3d"
)

func vecNear(a, b math3d.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestCameraDefaultBasis(t *testing.T) {
	b := NewCamera().Basis()

	if !vecNear(b.Position, math3d.V3(0, 0, -6), 1e-12) {
		t.Errorf("position = %v, want (0,0,-6)", b.Position)
	}
	if !vecNear(b.Forward, math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("forward = %v, want (0,0,1)", b.Forward)
	}
	if !vecNear(b.Right, math3d.V3(-1, 0, 0), 1e-12) {
		t.Errorf("right = %v, want (-1,0,0)", b.Right)
	}
	if !vecNear(b.Up, math3d.V3(0, 1, 0), 1e-12) {
		t.Errorf("up = %v, want (0,1,0)", b.Up)
	}
	if want := math.Tan(math3d.Radians(25)); math.Abs(b.TanFOV-want) > 1e-12 {
		t.Errorf("tanFOV = %v, want %v", b.TanFOV, want)
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	for _, yaw := range []float64{-2, -0.5, 0, 0.7, 3} {
		for _, pitch := range []float64{-1.2, 0, 0.4, 1.5} {
			c := &Camera{Dist: 4, Yaw: yaw, Pitch: pitch, FOV: DefaultFOV}
			b := c.Basis()
			if d := b.Position.Len(); math.Abs(d-4) > 1e-9 {
				t.Errorf("yaw=%v pitch=%v: |pos| = %v, want 4", yaw, pitch, d)
			}
			if math.Abs(b.Forward.Dot(b.Right)) > 1e-9 || math.Abs(b.Forward.Dot(b.Up)) > 1e-9 {
				t.Errorf("yaw=%v pitch=%v: basis not orthogonal", yaw, pitch)
			}
			if math.Abs(b.Up.Len()-1) > 1e-9 {
				t.Errorf("yaw=%v pitch=%v: |up| = %v", yaw, pitch, b.Up.Len())
			}
			// The camera looks at the origin.
			if !vecNear(b.Position.Scale(-1.0/4), b.Forward, 1e-9) {
				t.Errorf("yaw=%v pitch=%v: not looking at origin", yaw, pitch)
			}
		}
	}
}

func TestCameraPoleBasis(t *testing.T) {
	for _, pitch := range []float64{math.Pi / 2, -math.Pi / 2} {
		c := &Camera{Dist: 6, Yaw: 0.7, Pitch: pitch, FOV: DefaultFOV}
		b := c.Basis()
		if l := b.Right.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("pitch=%v: |right| = %v, want 1", pitch, l)
		}
		if l := b.Up.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("pitch=%v: |up| = %v, want 1", pitch, l)
		}
		if d := b.Right.Dot(b.Forward); math.Abs(d) > 1e-9 {
			t.Errorf("pitch=%v: right·forward = %v, want 0", pitch, d)
		}
		if l := b.Ray(0.3, -0.2, 1.5).Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("pitch=%v: |ray| = %v, want 1", pitch, l)
		}
	}
}

func TestCameraOrbitClampsPitch(t *testing.T) {
	c := NewCamera()
	c.Orbit(0.5, 10)
	if c.Pitch >= math.Pi/2 {
		t.Errorf("pitch = %v, want < pi/2", c.Pitch)
	}
	if c.Yaw != 0.5 {
		t.Errorf("yaw = %v, want 0.5", c.Yaw)
	}
	c.Orbit(0, -20)
	if c.Pitch <= -math.Pi/2 {
		t.Errorf("pitch = %v, want > -pi/2", c.Pitch)
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera()
	c.Zoom(-100)
	if c.Dist != MinCameraDist {
		t.Errorf("dist = %v, want %v", c.Dist, MinCameraDist)
	}
	c.ZoomFactor(1000)
	if c.Dist != MaxCameraDist {
		t.Errorf("dist = %v, want %v", c.Dist, MaxCameraDist)
	}
	c.Reset()
	if c.Dist != 6 || c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("reset camera = %+v", c)
	}
}

func TestRayCorners(t *testing.T) {
	b := NewCamera().Basis()
	// Top of the screen (v = -1) tilts the ray upward.
	top := b.Ray(0, -1, 1)
	if top.Y <= 0 {
		t.Errorf("top ray = %v, want Y > 0", top)
	}
	want := math.Atan(b.TanFOV)
	if got := math.Atan2(top.Y, top.Z); math.Abs(got-want) > 1e-9 {
		t.Errorf("half-angle = %v, want %v", got, want)
	}
	if math.Abs(top.Len()-1) > 1e-12 {
		t.Errorf("|ray| = %v, want 1", top.Len())
	}
}
