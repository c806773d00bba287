package config

import "github.com/taigrr/asciimarch/pkg/logging"

// SpinAxis selects which rotation auto-spin advances.
type SpinAxis int

const (
	AxisX SpinAxis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a SpinAxis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return "unknown"
	}
	return axisNames[a]
}

func (a SpinAxis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText keeps the current axis when the name is unknown.
func (a *SpinAxis) UnmarshalText(text []byte) error {
	v, err := ParseSpinAxis(string(text))
	if err != nil {
		logging.Logger().Warn("unknown spin axis, keeping previous", "name", string(text), "axis", a.String())
		return nil
	}
	*a = v
	return nil
}
