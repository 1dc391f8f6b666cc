package pipeline

import (
	"math"

	"worldcore/internal/noise"
	"worldcore/internal/worldmodel"
)

// BuildPrecipitation derives the precipitation layer from layered noise
// modulated by a gamma curve of normalized temperature, then renormalizes
// to [-1, 1].
func BuildPrecipitation(w *worldmodel.World, seed int64, gammaValue, gammaOffset float64) {
	gen := noise.New(seed)
	const octaves = 8
	frequency := float64(octaves*64) / (1024.0 / float64(w.Height))

	raw := worldmodel.NewFloatGrid(w.Width, w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			n := wrapBlendNoise(gen, float64(x), float64(y), float64(w.Width), float64(w.Height), octaves, frequency)
			raw.Set(x, y, float32(n))
		}
	}

	tempNorm := minMaxNormalize(w.Temperature)
	precipNorm := minMaxNormalize(raw)

	w.Precipitation = worldmodel.NewFloatGrid(w.Width, w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			that := float64(tempNorm.Get(x, y))
			phat := float64(precipNorm.Get(x, y))
			v := phat * (math.Pow(that, gammaValue)*(1-gammaOffset) + gammaOffset)
			w.Precipitation.Set(x, y, float32(v))
		}
	}

	renormalizeSigned(w.Precipitation)

	w.Thresholds.SetPrecipitation(worldmodel.PrecipitationLow, worldmodel.QuantileThreshold(w.Precipitation, w.Ocean, 0.75))
	w.Thresholds.SetPrecipitation(worldmodel.PrecipitationMedium, worldmodel.QuantileThreshold(w.Precipitation, w.Ocean, 0.3))
}

// minMaxNormalize rescales g's values into [0, 1] using g's own min and
// max, returning a new grid (the source is left untouched).
func minMaxNormalize(g *worldmodel.FloatGrid) *worldmodel.FloatGrid {
	out := worldmodel.NewFloatGrid(g.Width(), g.Height())
	min, max := g.Get(0, 0), g.Get(0, 0)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.Get(x, y)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if span == 0 {
				out.Set(x, y, 0)
				continue
			}
			out.Set(x, y, (g.Get(x, y)-min)/span)
		}
	}
	return out
}

// renormalizeSigned linearly rescales g in place to [-1, 1] using g's own
// min and max.
func renormalizeSigned(g *worldmodel.FloatGrid) {
	min, max := g.Get(0, 0), g.Get(0, 0)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.Get(x, y)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	if span == 0 {
		return
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			norm := (g.Get(x, y) - min) / span // [0, 1]
			g.Set(x, y, norm*2-1)
		}
	}
}
