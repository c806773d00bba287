package render

import (
	"testing"

	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/sdf"
)

// BenchmarkMarchTorus benchmarks a single primary ray against the default torus.
func BenchmarkMarchTorus(b *testing.B) {
	e := &Engine{
		Scene:    sdf.NewScene(sdf.ShapeTorus, 1.1, 20, 35, 0, sdf.Noise{}, 0),
		Light:    DefaultLighting(),
		MaxSteps: 72,
		MaxDist:  24,
	}
	ro := math3d.V3(0, 0, -6)
	rd := math3d.V3(0.05, 0.02, 1).Normalize()

	for b.Loop() {
		e.Cast(ro, rd, BoundingSphere{Radius: 2.42}, true)
	}
}

// BenchmarkRender80x24 benchmarks a full terminal-sized frame.
func BenchmarkRender80x24(b *testing.B) {
	f := testFrame(80, 24)
	f.Engine.Scene = sdf.NewScene(sdf.ShapeTorus, 1.1, 20, 35, 0,
		sdf.Noise{Enabled: true, Amount: 0.16, Scale: 2, Speed: 0.9, Octaves: 3}, 0)
	c := NewCompositor()

	for b.Loop() {
		c.Render(f)
		f.Index++
	}
}
