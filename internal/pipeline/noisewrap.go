package pipeline

import "worldcore/internal/noise"

// wrapBlendNoise samples octave-summed simplex noise at normalized
// coordinates (x/width, y/height), blending with a second sample shifted a
// full width over when x falls in the leftmost width/4 band. This removes
// the seam that would otherwise appear where a torus world's left and
// right edges meet. y is used unshifted, on both the temperature and
// precipitation stages, deliberately: the wrap only needs to hide the
// horizontal seam.
func wrapBlendNoise(gen *noise.Generator, x, y, width, height float64, octaves int, frequency float64) float64 {
	ny := y / height
	nx := x / width
	primary := gen.Octave2(nx, ny, octaves, frequency)

	band := width / 4
	if x >= band {
		return primary
	}
	secondary := gen.Octave2(nx+1, ny, octaves, frequency)
	blend := x / band
	return primary*blend + secondary*(1-blend)
}
