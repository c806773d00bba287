package render

// bayer4 holds the 4x4 ordered-dither thresholds, centred in each bin.
var bayer4 = func() [16]float64 {
	m := [16]int{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	}
	var out [16]float64
	for i, v := range m {
		out[i] = (float64(v) + 0.5) / 16
	}
	return out
}()

// Bayer returns the dither threshold in (0,1) for cell (x, y).
func Bayer(x, y int) float64 {
	return bayer4[(x&3)+((y&3)<<2)]
}

// Halton returns the index-th element of the radical-inverse sequence in
// the given base.
func Halton(index, base int) float64 {
	f, r := 1.0, 0.0
	for i := index; i > 0; i /= base {
		f /= float64(base)
		r += f * float64(i%base)
	}
	return r
}

// GlyphIndex maps tone in [0,1] to a ramp index after ordered dithering
// with threshold dth. The result is in [0, n-1].
func GlyphIndex(tone, dth float64, n int) int {
	if n <= 0 {
		return 0
	}
	tone += (dth - 0.5) / float64(n)
	if tone < 0 {
		tone = 0
	} else if tone > 1 {
		tone = 1
	}
	return int(tone * float64(n-1))
}
