package palette

import (
	"fmt"
	"strings"

	"github.com/taigrr/asciimarch/pkg/logging"
)

// Ramp names a preset glyph sequence.
type Ramp int

const (
	Dense Ramp = iota
	Classic
	Blocks
	Dots
	Binary
	Sparse
	Line
	Blocky
	RetroRamp
	numRamps
)

var rampNames = [numRamps]string{
	Dense:     "dense",
	Classic:   "classic",
	Blocks:    "blocks",
	Dots:      "dots",
	Binary:    "binary",
	Sparse:    "sparse",
	Line:      "line",
	Blocky:    "blocky",
	RetroRamp: "retro",
}

var rampGlyphs = [numRamps]string{
	Dense:     " .'`^,:;Il!i~+_-?][}{1)(|\\tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	Classic:   " .:-=+*#%@",
	Blocks:    " ░▒▓█",
	Dots:      " `·.:;ox%#@",
	Binary:    " 01",
	Sparse:    " .oO@",
	Line:      "/\\|_-",
	Blocky:    " ░▒▓█▉",
	RetroRamp: " .,:;iIl!tTfFjrxnuvczXYUJ",
}

// Ramps lists every preset in cycling order.
func Ramps() []Ramp {
	out := make([]Ramp, numRamps)
	for i := range out {
		out[i] = Ramp(i)
	}
	return out
}

func (r Ramp) String() string {
	if r < 0 || r >= numRamps {
		return fmt.Sprintf("Ramp(%d)", int(r))
	}
	return rampNames[r]
}

// Next returns the following preset, wrapping at the end.
func (r Ramp) Next() Ramp {
	return (r + 1) % numRamps
}

// Glyphs returns the preset's characters, emptiest first. Out-of-range
// values yield the dense ramp.
func (r Ramp) Glyphs() []rune {
	if r < 0 || r >= numRamps {
		r = Dense
	}
	return []rune(rampGlyphs[r])
}

// ParseRamp resolves a preset name, ignoring case.
func ParseRamp(name string) (Ramp, bool) {
	for i, n := range rampNames {
		if strings.EqualFold(n, name) {
			return Ramp(i), true
		}
	}
	return Dense, false
}

func (r Ramp) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText keeps the current preset when the name is unknown.
func (r *Ramp) UnmarshalText(text []byte) error {
	v, ok := ParseRamp(string(text))
	if !ok {
		logging.Logger().Warn("unknown ramp preset, keeping previous", "name", string(text), "ramp", r.String())
		return nil
	}
	*r = v
	return nil
}
