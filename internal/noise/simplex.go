// Package noise wraps layered simplex noise, the noise family every
// pipeline stage that needs fractal terrain detail (elevation, temperature,
// precipitation, permeability) is specified to use.
package noise

import "github.com/ojrac/opensimplex-go"

// Generator produces seeded, octave-summed simplex noise in [-1, 1].
type Generator struct {
	noise opensimplex.Noise
}

// New creates a noise generator seeded deterministically from seed.
func New(seed int64) *Generator {
	return &Generator{noise: opensimplex.New(seed)}
}

// Eval2 samples raw simplex noise at (x, y), in [-1, 1].
func (g *Generator) Eval2(x, y float64) float64 {
	return g.noise.Eval2(x, y)
}

// Octave2 sums octaves layers of simplex noise at (x, y). Each successive
// octave doubles frequency and halves amplitude, the standard fractal-noise
// construction used throughout this codebase's terrain generators.
func (g *Generator) Octave2(x, y float64, octaves int, frequency float64) float64 {
	var total, amplitude, maxValue float64
	amplitude = 1.0
	freq := frequency
	for i := 0; i < octaves; i++ {
		total += g.noise.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		freq *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}
