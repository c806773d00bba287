package render

import (
	"github.com/taigrr/asciimarch/pkg/math3d"
)

// BoundingSphere encloses the drawable surface. Rays that miss it are
// background without marching.
type BoundingSphere struct {
	Center math3d.Vec3
	Radius float64
}

// IntersectsRay reports whether the line through origin along unit
// direction dir touches the sphere. Only the discriminant is tested, so a
// sphere behind the origin still counts.
func (s BoundingSphere) IntersectsRay(origin, dir math3d.Vec3) bool {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	return b*b-c >= 0
}
