// Package sdf implements the analytic signed distance fields the renderer
// can draw and the per-frame scene evaluator that selects among them.
//
// Every primitive is centred on the origin and returns a negative value
// inside the solid and a positive value outside. The fields are exact or
// close to Lipschitz-1 near the surface; far-field accuracy is not needed
// because the marcher clamps its step length.
package sdf

import (
	"math"

	"github.com/taigrr/asciimarch/pkg/math3d"
)

const invSqrt3 = 0.57735026919

// Sphere of radius r.
func Sphere(p math3d.Vec3, r float64) float64 {
	return p.Len() - r
}

// Box with half-extents b.
func Box(p math3d.Vec3, b math3d.Vec3) float64 {
	q := p.Abs().Sub(b)
	outside := q.MaxScalar(0).Len()
	inside := math.Min(q.MaxComponent(), 0)
	return outside + inside
}

// RoundBox is a box with half-extents b whose edges are rounded by r.
func RoundBox(p math3d.Vec3, b math3d.Vec3, r float64) float64 {
	return Box(p, b.Sub(math3d.V3(r, r, r))) - r
}

// Torus lying in the XZ plane with major radius R and minor radius r.
func Torus(p math3d.Vec3, major, minor float64) float64 {
	qx := math.Hypot(p.X, p.Z) - major
	return math.Hypot(qx, p.Y) - minor
}

// Octahedron with vertex distance s (bound, not exact).
func Octahedron(p math3d.Vec3, s float64) float64 {
	return (math.Abs(p.X) + math.Abs(p.Y) + math.Abs(p.Z) - s) * invSqrt3
}

// Capsule between a and b with radius r.
func Capsule(p, a, b math3d.Vec3, r float64) float64 {
	pa, ba := p.Sub(a), b.Sub(a)
	h := math3d.Clamp(pa.Dot(ba)/ba.Dot(ba), 0, 1)
	return pa.Sub(ba.Scale(h)).Len() - r
}

// Cylinder along Y with radius r and half-height h.
func Cylinder(p math3d.Vec3, r, h float64) float64 {
	dx := math.Hypot(p.X, p.Z) - r
	dy := math.Abs(p.Y) - h
	return math.Min(math.Max(dx, dy), 0) + math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
}

// Cone with its base at y = -h and base radius r.
func Cone(p math3d.Vec3, h, r float64) float64 {
	q := math.Hypot(p.X, p.Z)
	k := r / h
	return math.Max(math.Hypot(q, p.Y*k)-r, -p.Y-h)
}

// Plane with unit normal n, offset h from the origin.
func Plane(p, n math3d.Vec3, h float64) float64 {
	return p.Dot(n) + h
}

// Ellipsoid with radii r (approximate, scaled by the smallest radius).
func Ellipsoid(p, r math3d.Vec3) float64 {
	k := p.Div(r)
	return (k.Len() - 1) * r.MinComponent()
}

// TriPrism is a triangular prism along Z with triangle size size and
// half-depth depth.
func TriPrism(p math3d.Vec3, size, depth float64) float64 {
	qx, qy, qz := math.Abs(p.X), p.Y, math.Abs(p.Z)
	d1 := qz - depth
	d2 := math.Max(qx*0.866025404+qy*0.5, -qy) - size*0.5
	return math.Min(math.Max(d1, d2), 0) + math.Hypot(math.Max(d1, 0), math.Max(d2, 0))
}

// HexPrism is a hexagonal prism along Z with apothem size and half-depth depth.
func HexPrism(p math3d.Vec3, size, depth float64) float64 {
	q := p.Abs()
	d1 := q.Z - depth
	d2 := math.Max(q.X*0.866025404+q.Y*0.5, q.Y) - size
	return math.Min(math.Max(d1, d2), 0) + math.Hypot(math.Max(d1, 0), math.Max(d2, 0))
}

var tetraNormals = [4]math3d.Vec3{
	math3d.V3(1, 1, 1).Normalize(),
	math3d.V3(-1, -1, 1).Normalize(),
	math3d.V3(-1, 1, -1).Normalize(),
	math3d.V3(1, -1, -1).Normalize(),
}

// Tetrahedron bounded by four planes at distance s*0.577 from the origin.
func Tetrahedron(p math3d.Vec3, s float64) float64 {
	off := s * 0.577
	d := p.Dot(tetraNormals[0]) - off
	for _, n := range tetraNormals[1:] {
		d = math.Max(d, p.Dot(n)-off)
	}
	return d
}

// Pyramid with a diamond footprint of half-diagonal h and height h.
func Pyramid(p math3d.Vec3, h float64) float64 {
	return math.Max(math.Abs(p.X)+math.Abs(p.Z)-h, math.Abs(p.Y)-h*0.5)
}

// Cross is three orthogonal bars of half-length arm and half-thickness bar.
func Cross(p math3d.Vec3, arm, bar float64) float64 {
	x := Box(p, math3d.V3(arm, bar, bar))
	y := Box(p, math3d.V3(bar, arm, bar))
	z := Box(p, math3d.V3(bar, bar, arm))
	return math.Min(x, math.Min(y, z))
}

// Heart is the Taubin heart surface
//
//	(x² + 9/4 y² + z² - 1)³ - x² z³ - 9/80 y² z³ = 0
//
// scaled by s. The implicit value is divided by its gradient length to get
// a first-order distance estimate, then rescaled to world units.
func Heart(p math3d.Vec3, s float64) float64 {
	x, y, z := p.X/s, p.Y/s, p.Z/s
	xx, yy, zz := x*x, y*y, z*z
	zzz := zz * z
	a := xx + 9.0/4*yy + zz - 1
	f := a*a*a - xx*zzz - 9.0/80*yy*zzz
	aa := a * a
	gx := 6*x*aa - 2*x*zzz
	gy := 27.0/2*y*aa - 9.0/40*y*zzz
	gz := 6*z*aa - 3*zz*(xx+9.0/80*yy)
	g := math.Sqrt(gx*gx + gy*gy + gz*gz)
	return f / (g + 1e-3) * s
}

// Egg is an ellipsoid whose horizontal radii grow with height.
func Egg(p math3d.Vec3, s float64) float64 {
	k := 0.2 + 0.8*math3d.Smoothstep(-1, 1, p.Y/s)
	return Ellipsoid(p, math3d.V3(s*k, s, s*k*0.9))
}
