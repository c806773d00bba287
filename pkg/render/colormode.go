package render

import (
	"fmt"
	"strings"

	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/math3d"
)

// ColorMode selects which shading channel drives the palette.
type ColorMode int

const (
	ModeLuma ColorMode = iota
	ModeDepth
	ModeNormal
	ModeSpecular
	ModeMomentum
	ModeHue
	ModeFresnel
	ModeSteps
	ModePosition
	ModeAO
	numModes
)

var modeNames = [numModes]string{
	ModeLuma:     "luma",
	ModeDepth:    "depth",
	ModeNormal:   "normal",
	ModeSpecular: "specular",
	ModeMomentum: "momentum",
	ModeHue:      "hue",
	ModeFresnel:  "fresnel",
	ModeSteps:    "steps",
	ModePosition: "position",
	ModeAO:       "ao",
}

// ColorModes lists every mode in cycling order.
func ColorModes() []ColorMode {
	out := make([]ColorMode, numModes)
	for i := range out {
		out[i] = ColorMode(i)
	}
	return out
}

func (m ColorMode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the following mode, wrapping at the end.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % numModes
}

// ParseColorMode resolves a mode name, ignoring case.
func ParseColorMode(name string) (ColorMode, bool) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return ColorMode(i), true
		}
	}
	return ModeLuma, false
}

func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText keeps the current mode when the name is unknown.
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, ok := ParseColorMode(string(text))
	if !ok {
		logging.Logger().Warn("unknown color mode, keeping previous", "name", string(text), "mode", m.String())
		return nil
	}
	*m = v
	return nil
}

// Channel returns the palette input in [0,1] for a sample. blended is the
// temporally filtered luminance and momentum the frame-to-frame delta.
// Unknown modes fall back to luma.
func (m ColorMode) Channel(s Sample, blended, momentum float64) float64 {
	n := s.Normal
	switch m {
	case ModeDepth:
		return 1 - s.Depth
	case ModeNormal:
		return 0.5*(n.X+n.Y+n.Z)/1.5 + 0.5
	case ModeSpecular:
		return math3d.Clamp(s.Spec, 0, 1)
	case ModeMomentum:
		return math3d.Clamp(momentum*4, 0, 1)
	case ModeHue:
		return math3d.Clamp(0.5*(n.X+1), 0, 1)
	case ModeFresnel:
		return s.Fresnel
	case ModeSteps:
		return s.StepsNorm
	case ModePosition:
		return s.Position
	case ModeAO:
		return s.AO
	}
	return blended
}
