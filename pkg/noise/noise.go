// Package noise implements hashed-lattice value noise and its fractal
// Brownian motion sum, used to perturb distance fields.
package noise

import (
	"math"

	"github.com/taigrr/asciimarch/pkg/math3d"
)

// MaxOctaves is the largest octave count the renderer will request.
const MaxOctaves = 5

const (
	lacunarity = 2.0
	gain       = 0.5
	latticeMax = 0xfffffff
)

// Hash32 is Thomas Wang's 32-bit integer hash.
func Hash32(x uint32) uint32 {
	x = (x ^ 61) ^ (x >> 16)
	x += x << 3
	x ^= x >> 4
	x *= 0x27d4eb2d
	x ^= x >> 15
	return x
}

// lattice returns the pseudo-random value in [0, 1] at an integer lattice point.
func lattice(i, j, k int32) float64 {
	n := Hash32(uint32(i*73856093) ^ uint32(j*19349663) ^ uint32(k*83492791))
	return float64(n&latticeMax) / latticeMax
}

// Value3 samples value noise at (x, y, z). The eight surrounding lattice
// values are blended trilinearly with smoothstep weights; the result is in
// [0, 1].
func Value3(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi, yi, zi := int32(fx), int32(fy), int32(fz)
	xf, yf, zf := x-fx, y-fy, z-fz

	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)
	w := zf * zf * (3 - 2*zf)

	c000 := lattice(xi, yi, zi)
	c100 := lattice(xi+1, yi, zi)
	c010 := lattice(xi, yi+1, zi)
	c110 := lattice(xi+1, yi+1, zi)
	c001 := lattice(xi, yi, zi+1)
	c101 := lattice(xi+1, yi, zi+1)
	c011 := lattice(xi, yi+1, zi+1)
	c111 := lattice(xi+1, yi+1, zi+1)

	x00 := math3d.Mix(c000, c100, u)
	x10 := math3d.Mix(c010, c110, u)
	x01 := math3d.Mix(c001, c101, u)
	x11 := math3d.Mix(c011, c111, u)
	y0 := math3d.Mix(x00, x10, v)
	y1 := math3d.Mix(x01, x11, v)
	return math3d.Mix(y0, y1, w)
}

// FBM3 sums octaves of Value3 at doubling frequency and halving amplitude,
// normalised by the total amplitude so the result stays in [0, 1].
// An octave count below 1 yields 0.
func FBM3(p math3d.Vec3, octaves int) float64 {
	var sum, norm float64
	amp, freq := 0.5, 1.0
	for range octaves {
		sum += amp * Value3(p.X*freq, p.Y*freq, p.Z*freq)
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
