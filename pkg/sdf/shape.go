package sdf

import (
	"fmt"
	"strings"

	"github.com/taigrr/asciimarch/pkg/logging"
)

// Shape selects one entry of the fixed primitive catalog.
type Shape int

const (
	ShapeNone Shape = iota // draws nothing; every ray is background
	ShapeSphere
	ShapeBox
	ShapeRoundedBox
	ShapeTorus
	ShapeOctahedron
	ShapeCapsule
	ShapeCylinder
	ShapeCone
	ShapePyramid
	ShapeEllipsoid
	ShapeTriPrism
	ShapeHexPrism
	ShapePlane
	ShapeCross
	ShapeTetrahedron
	ShapeStar
	ShapeHeart
	ShapeEgg
)

var shapeNames = [...]string{
	ShapeNone:        "None",
	ShapeSphere:      "Sphere",
	ShapeBox:         "Box",
	ShapeRoundedBox:  "RoundedBox",
	ShapeTorus:       "Torus",
	ShapeOctahedron:  "Octahedron",
	ShapeCapsule:     "Capsule",
	ShapeCylinder:    "Cylinder",
	ShapeCone:        "Cone",
	ShapePyramid:     "Pyramid",
	ShapeEllipsoid:   "Ellipsoid",
	ShapeTriPrism:    "TriPrism",
	ShapeHexPrism:    "HexPrism",
	ShapePlane:       "Plane",
	ShapeCross:       "Cross",
	ShapeTetrahedron: "Tetrahedron",
	ShapeStar:        "Star",
	ShapeHeart:       "Heart",
	ShapeEgg:         "Egg",
}

// Shapes lists every drawable shape in catalog order.
func Shapes() []Shape {
	out := make([]Shape, 0, len(shapeNames)-1)
	for s := ShapeSphere; s <= ShapeEgg; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the catalog name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s names a drawable shape.
func (s Shape) Valid() bool {
	return s > ShapeNone && s <= ShapeEgg
}

// Next returns the following drawable shape, wrapping at the end.
func (s Shape) Next() Shape {
	if s >= ShapeEgg || s < ShapeSphere {
		return ShapeSphere
	}
	return s + 1
}

// ParseShape resolves a catalog name, ignoring case.
func ParseShape(name string) (Shape, bool) {
	for i, n := range shapeNames {
		if i != int(ShapeNone) && strings.EqualFold(n, name) {
			return Shape(i), true
		}
	}
	return ShapeNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An unknown name leaves
// the receiver unchanged, so decoding over defaults keeps the default.
func (s *Shape) UnmarshalText(text []byte) error {
	v, ok := ParseShape(string(text))
	if !ok {
		logging.Logger().Warn("unknown shape, keeping previous", "name", string(text), "shape", s.String())
		return nil
	}
	*s = v
	return nil
}
