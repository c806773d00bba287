package render

import (
	"math"

	"github.com/taigrr/asciimarch/pkg/math3d"
	"github.com/taigrr/asciimarch/pkg/sdf"
)

// Marching constants.
const (
	HitEpsilon  = 0.001 // distance below which a ray has hit
	MinStep     = 0.02
	MaxStep     = 0.8
	shadowSteps = 32
	aoSamples   = 5
)

// LightDir is the single directional light.
var LightDir = math3d.V3(0.7, 0.9, 0.4).Normalize()

// Lighting holds the shading coefficients.
type Lighting struct {
	Ambient    float64
	Diffuse    float64
	Specular   float64
	Shininess  float64
	Shadows    bool
	ShadowK    float64 // penumbra softness; k = 1/ShadowK
	AO         bool
	AOStrength float64
	Gamma      float64
}

// DefaultLighting returns the stock coefficients.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:    0.25,
		Diffuse:    1.05,
		Specular:   0.5,
		Shininess:  32,
		Shadows:    true,
		ShadowK:    12,
		AO:         true,
		AOStrength: 0.9,
		Gamma:      1,
	}
}

// Sample is the result of casting one ray.
type Sample struct {
	Hit    bool
	Culled bool // rejected by the bounding sphere, never marched
	T      float64
	Steps  int

	Luma      float64 // gamma-corrected shade
	Spec      float64 // raw specular term
	Depth     float64 // T / MaxDist, clamped
	Fresnel   float64
	StepsNorm float64 // Steps / MaxSteps
	Position  float64 // angle around Y in [0,1)
	AO        float64
	Normal    math3d.Vec3
}

// Engine marches rays against a scene and shades the hits.
type Engine struct {
	Scene    *sdf.Scene
	Light    Lighting
	MaxSteps int
	MaxDist  float64
}

// March sphere-traces from ro along unit direction rd. It reports the ray
// parameter and iteration count where the loop stopped.
func (e *Engine) March(ro, rd math3d.Vec3) (t float64, steps int, hit bool) {
	for ; steps < e.MaxSteps && t < e.MaxDist; steps++ {
		d := e.Scene.Eval(ro.AddScaled(rd, t))
		if d < HitEpsilon {
			return t, steps, true
		}
		t += math3d.Clamp(d, MinStep, MaxStep)
	}
	return t, steps, false
}

// SoftShadow marches toward the light from ro and returns a penumbra factor
// in [0,1]: 0 when occluded, 1 when fully lit.
func (e *Engine) SoftShadow(ro, rd math3d.Vec3, mint, maxt, k float64) float64 {
	res := 1.0
	t := mint
	for i := 0; i < shadowSteps && t < maxt; i++ {
		h := e.Scene.Eval(ro.AddScaled(rd, t))
		if h < 1e-4 {
			return 0
		}
		res = math.Min(res, k*h/t)
		t += math3d.Clamp(h, 0.01, 0.5)
	}
	return math3d.Clamp(res, 0, 1)
}

// AmbientOcclusion samples the field along the normal n at p. It returns 1
// when AO is disabled.
func (e *Engine) AmbientOcclusion(p, n math3d.Vec3) float64 {
	if !e.Light.AO {
		return 1
	}
	occ, sca := 0.0, 1.0
	for i := 1; i <= aoSamples; i++ {
		h := float64(i) * 0.08
		d := e.Scene.Eval(p.AddScaled(n, h))
		occ += (h - d) * sca
		sca *= 0.7
	}
	return math3d.Clamp(1-occ*e.Light.AOStrength, 0, 1)
}

// Background returns the channel values of a ray that hit nothing.
func Background() Sample {
	return Sample{Depth: 1, StepsNorm: 1, AO: 1}
}

// Cast traces one primary ray and shades it. bound is skipped when ok is
// false. Every ray into an empty scene is culled.
func (e *Engine) Cast(ro, rd math3d.Vec3, bound BoundingSphere, ok bool) Sample {
	if e.Scene.Empty() || ok && !bound.IntersectsRay(ro, rd) {
		s := Background()
		s.Culled = true
		return s
	}

	t, steps, hit := e.March(ro, rd)
	if !hit {
		s := Background()
		s.T, s.Steps = t, steps
		return s
	}

	p := ro.AddScaled(rd, t)
	n := e.Scene.Normal(p)
	h := LightDir.Sub(rd).Normalize()
	nol := math.Max(0, n.Dot(LightDir))
	spec := math.Pow(math.Max(0, n.Dot(h)), e.Light.Shininess)

	sh := 1.0
	if e.Light.Shadows {
		k := 1.0
		if e.Light.ShadowK > 0 {
			k = 1 / e.Light.ShadowK
		}
		sh = e.SoftShadow(p.AddScaled(n, 0.01), LightDir, 0.02, 8, k)
	}
	ao := e.AmbientOcclusion(p, n)

	shade := e.Light.Ambient + e.Light.Diffuse*nol*sh*ao + e.Light.Specular*spec
	gamma := e.Light.Gamma
	if gamma <= 0 {
		gamma = 1
	}
	shade = math.Pow(math3d.Clamp(shade, 0, 1), 1/gamma)

	stepsNorm := 0.0
	if e.MaxSteps > 0 {
		stepsNorm = float64(steps) / float64(e.MaxSteps)
	}
	angle := math.Atan2(p.Z, p.X)

	return Sample{
		Hit:       true,
		T:         t,
		Steps:     steps,
		Luma:      shade,
		Spec:      spec,
		Depth:     math3d.Clamp(t/e.MaxDist, 0, 1),
		Fresnel:   math.Pow(math3d.Clamp(1-n.Dot(rd.Negate()), 0, 1), 5),
		StepsNorm: stepsNorm,
		Position:  math.Mod(angle/(2*math.Pi)+0.5, 1),
		AO:        ao,
		Normal:    n,
	}
}
