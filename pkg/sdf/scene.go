package sdf

import (
	"math"

	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/noise"
)

// NormalEpsilon is the finite-difference step used by Scene.Normal.
const NormalEpsilon = 0.0015

// miss is returned for ShapeNone: far enough that no ray ever hits.
const miss = 1e9

// Noise parameters for the surface perturbation.
type Noise struct {
	Enabled bool
	Amount  float64 // displacement amplitude
	Scale   float64 // spatial frequency
	Speed   float64 // time scale
	Octaves int
}

// Scene is the per-frame view of the configured object: which shape, how
// big, how it is rotated and how its surface is perturbed. Build one per
// frame with NewScene; it is read-only afterwards.
type Scene struct {
	Shape    Shape
	Size     float64
	Rotation math3d.Mat3 // object-to-world; points are tested with its transpose
	Noise    Noise
	Time     float64 // seconds since start
}

// NewScene builds the scene for one frame. Rotation angles are in degrees.
func NewScene(shape Shape, size, rotX, rotY, rotZ float64, n Noise, time float64) *Scene {
	return &Scene{
		Shape: shape,
		Size:  size,
		Rotation: math3d.RotateXYZ(
			math3d.Radians(rotX),
			math3d.Radians(rotY),
			math3d.Radians(rotZ),
		),
		Noise: n,
		Time:  time,
	}
}

// Eval returns the signed distance from world point p to the scene surface.
func (s *Scene) Eval(p math3d.Vec3) float64 {
	pr := s.Rotation.MulTransposeVec3(p)
	d := s.shapeDistance(pr)
	if s.Noise.Enabled {
		t := s.Time * s.Noise.Speed
		ns := s.Noise.Scale
		q := math3d.V3(pr.X*ns+7.1, pr.Y*ns-11.3+t, pr.Z*ns+3.7)
		n := noise.FBM3(q, s.Noise.Octaves)
		d -= s.Noise.Amount * (n*2 - 1)
	}
	return d
}

func (s *Scene) shapeDistance(p math3d.Vec3) float64 {
	size := s.Size
	switch s.Shape {
	case ShapeSphere:
		return Sphere(p, size)
	case ShapeBox:
		return Box(p, math3d.V3(size, size, size))
	case ShapeRoundedBox:
		return RoundBox(p, math3d.V3(size, size, size), size*0.2)
	case ShapeTorus:
		return Torus(p, size, size*0.38)
	case ShapeOctahedron:
		return Octahedron(p, size)
	case ShapeCapsule:
		return Capsule(p, math3d.V3(-size, 0, 0), math3d.V3(size, 0, 0), size*0.35)
	case ShapeCylinder:
		return Cylinder(p, size*0.7, size*0.8)
	case ShapeCone:
		return Cone(p, size*0.9, size*0.8)
	case ShapePyramid:
		return Pyramid(p, size*1.5)
	case ShapeEllipsoid:
		return Ellipsoid(p, math3d.V3(size, size*0.7, size*1.2))
	case ShapeTriPrism:
		return TriPrism(p, size*1.7, size*0.8)
	case ShapeHexPrism:
		return HexPrism(p, size*0.9, size*0.7)
	case ShapePlane:
		return Plane(p, math3d.Up(), 0.6)
	case ShapeCross:
		return Cross(p, size*1.2, size*0.35)
	case ShapeTetrahedron:
		return Tetrahedron(p, size*1.8)
	case ShapeStar:
		return math.Min(Octahedron(p, size*0.9), Torus(p, size*0.9, size*0.22))
	case ShapeHeart:
		return Heart(p, size*0.9)
	case ShapeEgg:
		return Egg(p, size)
	case ShapeNone:
		return miss
	}
	return miss
}

// Normal estimates the unit surface normal at p by forward differences.
// Only meaningful at or near the surface.
func (s *Scene) Normal(p math3d.Vec3) math3d.Vec3 {
	const e = NormalEpsilon
	d := s.Eval(p)
	return math3d.V3(
		s.Eval(math3d.V3(p.X+e, p.Y, p.Z))-d,
		s.Eval(math3d.V3(p.X, p.Y+e, p.Z))-d,
		s.Eval(math3d.V3(p.X, p.Y, p.Z+e))-d,
	).Normalize()
}

// Empty reports whether the scene has no surface to hit.
func (s *Scene) Empty() bool { return s.Shape == ShapeNone }

// Bound returns the radius of an origin-centred sphere that encloses the
// surface. ok is false for the unbounded plane, whose rays must always be
// marched. Callers should check Empty first.
func (s *Scene) Bound() (radius float64, ok bool) {
	if s.Shape == ShapePlane {
		return 0, false
	}
	radius = s.Size * 2.2
	if s.Noise.Enabled {
		radius += s.Noise.Amount * 2
	}
	return radius, true
}
