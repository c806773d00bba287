package render

import (
	"math"
	"testing"

	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/sdf"
)

func sphereEngine(r float64) *Engine {
	light := DefaultLighting()
	light.Shadows = false
	light.AO = false
	return &Engine{
		Scene:    sdf.NewScene(sdf.ShapeSphere, r, 0, 0, 0, sdf.Noise{}, 0),
		Light:    light,
		MaxSteps: 72,
		MaxDist:  24,
	}
}

func TestMarchSphereDistance(t *testing.T) {
	e := sphereEngine(1)
	for _, d := range []float64{3, 6, 10, 20, 24} {
		ro := math3d.V3(0, 0, -d)
		rd := math3d.V3(0, 0, 1)
		tt, _, hit := e.March(ro, rd)
		if !hit {
			t.Errorf("D=%v: no hit", d)
			continue
		}
		if math.Abs(tt-(d-1)) > HitEpsilon {
			t.Errorf("D=%v: t = %v, want %v", d, tt, d-1)
		}
	}
}

func TestMarchMiss(t *testing.T) {
	e := sphereEngine(1)
	tt, steps, hit := e.March(math3d.V3(0, 3, -6), math3d.V3(0, 0, 1))
	if hit {
		t.Fatalf("hit at t=%v, want miss", tt)
	}
	if steps > e.MaxSteps {
		t.Errorf("steps = %d, want <= %d", steps, e.MaxSteps)
	}
}

func TestMarchZeroSteps(t *testing.T) {
	e := sphereEngine(1)
	e.MaxSteps = 0
	if _, _, hit := e.March(math3d.V3(0, 0, -3), math3d.V3(0, 0, 1)); hit {
		t.Error("hit with zero step budget")
	}
}

func TestCastSphereHeadOn(t *testing.T) {
	e := sphereEngine(1)
	cam := NewCamera()
	b := cam.Basis()
	rd := b.Ray(0, 0, 1)
	bound := BoundingSphere{Radius: 2.2}

	s := e.Cast(b.Position, rd, bound, true)
	if !s.Hit {
		t.Fatal("no hit")
	}
	if math.Abs(s.T-5) > HitEpsilon {
		t.Errorf("t = %v, want 5", s.T)
	}
	if math.Abs(s.Depth-5.0/24) > HitEpsilon/24 {
		t.Errorf("depth = %v, want %v", s.Depth, 5.0/24)
	}
	// The light sits behind the visible hemisphere, so only ambient remains.
	if math.Abs(s.Luma-0.25) > 1e-3 {
		t.Errorf("luma = %v, want ~0.25", s.Luma)
	}
	if s.Normal.Dot(math3d.V3(0, 0, -1)) < 0.999 {
		t.Errorf("normal = %v, want (0,0,-1)", s.Normal)
	}
	if s.Fresnel > 1e-6 {
		t.Errorf("fresnel = %v, want 0 head-on", s.Fresnel)
	}
}

func TestCastCulledByBound(t *testing.T) {
	e := sphereEngine(1)
	s := e.Cast(math3d.V3(0, 5, -6), math3d.V3(0, 0, 1), BoundingSphere{Radius: 2.2}, true)
	if !s.Culled || s.Hit {
		t.Errorf("culled = %v, hit = %v; want true, false", s.Culled, s.Hit)
	}
	if s.Depth != 1 || s.AO != 1 || s.StepsNorm != 1 {
		t.Errorf("background channels = %+v", s)
	}
}

func TestCastEmptySceneCulled(t *testing.T) {
	e := sphereEngine(1)
	e.Scene = sdf.NewScene(sdf.ShapeNone, 1, 0, 0, 0, sdf.Noise{}, 0)
	for _, ok := range []bool{true, false} {
		s := e.Cast(math3d.V3(0, 0, -6), math3d.V3(0, 0, 1), BoundingSphere{Radius: 2.2}, ok)
		if !s.Culled || s.Hit || s.Steps != 0 {
			t.Errorf("ok=%v: culled = %v, hit = %v, steps = %d; want true, false, 0", ok, s.Culled, s.Hit, s.Steps)
		}
	}
}

func TestCastGammaBrightens(t *testing.T) {
	e := sphereEngine(1)
	ro, rd := math3d.V3(0, 0, -6), math3d.V3(0, 0, 1)
	base := e.Cast(ro, rd, BoundingSphere{}, false)
	e.Light.Gamma = 2.2
	bright := e.Cast(ro, rd, BoundingSphere{}, false)
	want := math.Pow(base.Luma, 1/2.2)
	if math.Abs(bright.Luma-want) > 1e-9 {
		t.Errorf("gamma luma = %v, want %v", bright.Luma, want)
	}
}

func TestSoftShadow(t *testing.T) {
	e := sphereEngine(1)
	up := math3d.V3(0, 1, 0)

	if sh := e.SoftShadow(math3d.V3(0, -3, 0), up, 0.02, 8, 16); sh != 0 {
		t.Errorf("occluded shadow = %v, want 0", sh)
	}
	if sh := e.SoftShadow(math3d.V3(0, 3, 0), up, 0.02, 8, 16); sh != 1 {
		t.Errorf("open shadow = %v, want 1", sh)
	}
}

func TestAmbientOcclusion(t *testing.T) {
	e := sphereEngine(1)
	p, n := math3d.V3(1, 0, 0), math3d.V3(1, 0, 0)
	if ao := e.AmbientOcclusion(p, n); ao != 1 {
		t.Errorf("disabled AO = %v, want 1", ao)
	}

	e.Light.AO = true
	if ao := e.AmbientOcclusion(p, n); math.Abs(ao-1) > 1e-9 {
		t.Errorf("convex AO = %v, want 1", ao)
	}
	if ao := e.AmbientOcclusion(math3d.Zero3(), n); ao != 0 {
		t.Errorf("buried AO = %v, want 0", ao)
	}
}

func TestBoundingSphere(t *testing.T) {
	s := BoundingSphere{Radius: 2}
	tests := []struct {
		name string
		ro   math3d.Vec3
		rd   math3d.Vec3
		want bool
	}{
		{"head on", math3d.V3(0, 0, -6), math3d.V3(0, 0, 1), true},
		{"tangent", math3d.V3(2, 0, -6), math3d.V3(0, 0, 1), true},
		{"above", math3d.V3(0, 2.1, -6), math3d.V3(0, 0, 1), false},
		{"inside", math3d.Zero3(), math3d.V3(1, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IntersectsRay(tc.ro, tc.rd); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
