// Package config holds the viewer settings record, its JSON file format and
// the copy-on-write store that all mutation goes through.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/asciimarch/pkg/logging"
	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/noise"
	"github.com/taigrr/asciimarch/pkg/palette"
	"github.com/taigrr/asciimarch/pkg/render"
	"github.com/taigrr/asciimarch/pkg/sdf"
)

// ErrUnknownName is returned by the strict parse helpers.
var ErrUnknownName = errors.New("unknown name")

// CameraCfg is the orbit camera. Angles are radians.
type CameraCfg struct {
	Dist  float64 `json:"dist"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// NoiseCfg is the surface displacement.
type NoiseCfg struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
	Scale   float64 `json:"scale"`
	Speed   float64 `json:"speed"`
	Octaves int     `json:"octaves"`
}

// Config is the full settings record. Rotations are degrees.
type Config struct {
	Shape sdf.Shape `json:"shape"`
	Size  float64   `json:"size"`
	RotX  float64   `json:"rotX"`
	RotY  float64   `json:"rotY"`
	RotZ  float64   `json:"rotZ"`

	AutoSpin  bool     `json:"autoSpin"`
	SpinSpeed float64  `json:"spinSpeed"` // degrees per frame
	SpinAxis  SpinAxis `json:"spinAxis"`

	Ambient    float64 `json:"ambient"`
	Diffuse    float64 `json:"diffuse"`
	Specular   float64 `json:"specular"`
	Shininess  float64 `json:"shininess"`
	Shadows    bool    `json:"shadows"`
	ShadowK    float64 `json:"shadowK"`
	AO         bool    `json:"ao"`
	AOStrength float64 `json:"aoStrength"`

	Noise NoiseCfg `json:"noise"`

	Preset     palette.Ramp `json:"preset"`
	AsciiChars string       `json:"asciiChars,omitempty"` // overrides Preset when set

	Invert     bool             `json:"invert"`
	Color      bool             `json:"color"`
	Gamma      float64          `json:"gamma"`
	ColorMode  render.ColorMode `json:"colorMode"`
	Palette    palette.Palette  `json:"palette"`
	Background string           `json:"background"`

	FontSize  float64 `json:"fontSize"`
	ResScale  float64 `json:"resScale"`
	MaxSteps  int     `json:"maxSteps"`
	MaxDist   float64 `json:"maxDist"`
	TAA       bool    `json:"taa"`
	TAAAmount float64 `json:"taaAmount"`
	Adaptive  bool    `json:"adaptive"`
	TargetFPS float64 `json:"targetFps"`

	Camera CameraCfg `json:"camera"`
}

// Default returns the stock settings.
func Default() Config {
	light := render.DefaultLighting()
	return Config{
		Shape: sdf.ShapeTorus,
		Size:  1.1,
		RotX:  20,
		RotY:  35,

		AutoSpin:  true,
		SpinSpeed: 0.6,
		SpinAxis:  AxisY,

		Ambient:    light.Ambient,
		Diffuse:    light.Diffuse,
		Specular:   light.Specular,
		Shininess:  light.Shininess,
		Shadows:    light.Shadows,
		ShadowK:    light.ShadowK,
		AO:         light.AO,
		AOStrength: light.AOStrength,

		Noise: NoiseCfg{
			Amount:  0.16,
			Scale:   2,
			Speed:   0.9,
			Octaves: 3,
		},

		Preset:     palette.Dense,
		Color:      true,
		Gamma:      light.Gamma,
		ColorMode:  render.ModeLuma,
		Palette:    palette.Viridis,
		Background: "#000000",

		FontSize:  14,
		ResScale:  1,
		MaxSteps:  72,
		MaxDist:   24,
		TAA:       true,
		TAAAmount: 0.6,
		Adaptive:  true,
		TargetFPS: 50,

		Camera: CameraCfg{Dist: 6},
	}
}

// Load reads a JSON file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Save writes the settings as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Sanitize clamps every numeric field to its usable range and wraps the
// rotation angles.
func (c *Config) Sanitize() {
	c.Size = math3d.Clamp(c.Size, 0.2, 2.5)
	c.RotX = math3d.WrapDegrees(c.RotX)
	c.RotY = math3d.WrapDegrees(c.RotY)
	c.RotZ = math3d.WrapDegrees(c.RotZ)
	c.SpinSpeed = math3d.Clamp(c.SpinSpeed, -5, 5)

	c.Ambient = math3d.Clamp(c.Ambient, 0, 1)
	c.Diffuse = math3d.Clamp(c.Diffuse, 0, 2)
	c.Specular = math3d.Clamp(c.Specular, 0, 2)
	c.Shininess = math3d.Clamp(c.Shininess, 2, 128)
	c.ShadowK = math3d.Clamp(c.ShadowK, 1, 24)
	c.AOStrength = math3d.Clamp(c.AOStrength, 0, 2)

	c.Noise.Amount = math3d.Clamp(c.Noise.Amount, 0, 0.8)
	c.Noise.Scale = math3d.Clamp(c.Noise.Scale, 0.2, 6)
	c.Noise.Speed = math3d.Clamp(c.Noise.Speed, 0, 4)
	c.Noise.Octaves = min(max(c.Noise.Octaves, 1), noise.MaxOctaves)

	c.Gamma = math3d.Clamp(c.Gamma, 0.6, 2.4)
	c.FontSize = math3d.Clamp(c.FontSize, 8, 28)
	c.ResScale = math3d.Clamp(c.ResScale, 0.5, 2)
	c.MaxSteps = min(max(c.MaxSteps, 16), 180)
	c.MaxDist = math3d.Clamp(c.MaxDist, 8, 64)
	c.TAAAmount = math3d.Clamp(c.TAAAmount, 0, render.MaxTAA)
	c.TargetFPS = math3d.Clamp(c.TargetFPS, 24, 90)

	c.Camera.Dist = math3d.Clamp(c.Camera.Dist, render.MinCameraDist, render.MaxCameraDist)

	if _, err := colorful.Hex(c.Background); err != nil {
		logging.Logger().Warn("invalid background colour, using black", "background", c.Background)
		c.Background = "#000000"
	}
}

// SetPreset selects a ramp preset, replacing any custom characters.
func (c *Config) SetPreset(r palette.Ramp) {
	c.Preset = r
	c.AsciiChars = ""
}

// Glyphs returns the active ramp, emptiest first.
func (c *Config) Glyphs() []rune {
	if c.AsciiChars != "" {
		return []rune(c.AsciiChars)
	}
	return c.Preset.Glyphs()
}

// BackgroundColor parses Background, falling back to black.
func (c *Config) BackgroundColor() color.RGBA {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Spin advances the auto-spin rotation by one frame.
func (c *Config) Spin() {
	if !c.AutoSpin || c.SpinSpeed == 0 {
		return
	}
	switch c.SpinAxis {
	case AxisX:
		c.RotX = math3d.WrapDegrees(c.RotX + c.SpinSpeed)
	case AxisZ:
		c.RotZ = math3d.WrapDegrees(c.RotZ + c.SpinSpeed)
	default:
		c.RotY = math3d.WrapDegrees(c.RotY + c.SpinSpeed)
	}
}

// Scene builds the distance field for the given animation time.
func (c *Config) Scene(time float64) *sdf.Scene {
	n := sdf.Noise{
		Enabled: c.Noise.Enabled,
		Amount:  c.Noise.Amount,
		Scale:   c.Noise.Scale,
		Speed:   c.Noise.Speed,
		Octaves: c.Noise.Octaves,
	}
	return sdf.NewScene(c.Shape, c.Size, c.RotX, c.RotY, c.RotZ, n, time)
}

// Lighting returns the shading coefficients.
func (c *Config) Lighting() render.Lighting {
	return render.Lighting{
		Ambient:    c.Ambient,
		Diffuse:    c.Diffuse,
		Specular:   c.Specular,
		Shininess:  c.Shininess,
		Shadows:    c.Shadows,
		ShadowK:    c.ShadowK,
		AO:         c.AO,
		AOStrength: c.AOStrength,
		Gamma:      c.Gamma,
	}
}

// Engine builds a ray marcher over scene with these settings.
func (c *Config) Engine(scene *sdf.Scene) *render.Engine {
	return &render.Engine{
		Scene:    scene,
		Light:    c.Lighting(),
		MaxSteps: c.MaxSteps,
		MaxDist:  c.MaxDist,
	}
}

// Options returns the compositing options.
func (c *Config) Options() render.Options {
	return render.Options{
		Ramp:       c.Glyphs(),
		Invert:     c.Invert,
		Color:      c.Color,
		Mode:       c.ColorMode,
		Palette:    c.Palette,
		TAA:        c.TAA,
		TAAAmount:  c.TAAAmount,
		Background: c.BackgroundColor(),
	}
}

// Cam returns the orbit camera.
func (c *Config) Cam() *render.Camera {
	return &render.Camera{
		Dist:  c.Camera.Dist,
		Yaw:   c.Camera.Yaw,
		Pitch: c.Camera.Pitch,
		FOV:   render.DefaultFOV,
	}
}

// SetCam stores the orbit camera.
func (c *Config) SetCam(cam *render.Camera) {
	c.Camera = CameraCfg{Dist: cam.Dist, Yaw: cam.Yaw, Pitch: cam.Pitch}
}

// Frame assembles one compositing pass.
func (c *Config) Frame(cols, rows, index int, cellW, cellH, time float64) *render.Frame {
	return &render.Frame{
		Cols:    cols,
		Rows:    rows,
		CellW:   cellW,
		CellH:   cellH,
		Index:   index,
		Camera:  c.Cam().Basis(),
		Engine:  c.Engine(c.Scene(time)),
		Options: c.Options(),
	}
}

// ParseShape resolves a shape name strictly.
func ParseShape(name string) (sdf.Shape, error) {
	s, ok := sdf.ParseShape(name)
	if !ok {
		return s, fmt.Errorf("shape %q: %w", name, ErrUnknownName)
	}
	return s, nil
}

// ParsePalette resolves a palette name strictly.
func ParsePalette(name string) (palette.Palette, error) {
	p, ok := palette.Parse(name)
	if !ok {
		return p, fmt.Errorf("palette %q: %w", name, ErrUnknownName)
	}
	return p, nil
}

// ParseRamp resolves a ramp preset name strictly.
func ParseRamp(name string) (palette.Ramp, error) {
	r, ok := palette.ParseRamp(name)
	if !ok {
		return r, fmt.Errorf("ramp %q: %w", name, ErrUnknownName)
	}
	return r, nil
}

// ParseColorMode resolves a colour mode name strictly.
func ParseColorMode(name string) (render.ColorMode, error) {
	m, ok := render.ParseColorMode(name)
	if !ok {
		return m, fmt.Errorf("color mode %q: %w", name, ErrUnknownName)
	}
	return m, nil
}

// ParseSpinAxis resolves an axis name strictly.
func ParseSpinAxis(name string) (SpinAxis, error) {
	for i, n := range axisNames {
		if strings.EqualFold(n, name) {
			return SpinAxis(i), nil
		}
	}
	return AxisY, fmt.Errorf("spin axis %q: %w", name, ErrUnknownName)
}
