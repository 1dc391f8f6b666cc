package pipeline

import (
	"worldcore/internal/noise"
	"worldcore/internal/worldmodel"
)

// BuildPermeability lays down a pure noise layer and derives its Low/Medium
// quantile thresholds (High stays the +Inf catch-all).
func BuildPermeability(w *worldmodel.World, seed int64) {
	gen := noise.New(seed)
	const octaves = 6
	frequency := float64(octaves * 64)

	w.Permeability = worldmodel.NewFloatGrid(w.Width, w.Height)
	for y := 0; y < w.Height; y++ {
		ny := float64(y) / float64(w.Height)
		for x := 0; x < w.Width; x++ {
			nx := float64(x) / float64(w.Width)
			n := gen.Octave2(nx, ny, octaves, frequency)
			w.Permeability.Set(x, y, float32(n))
		}
	}

	w.Thresholds.SetPermeability(worldmodel.PermeabilityLow, worldmodel.QuantileThreshold(w.Permeability, w.Ocean, 0.75))
	w.Thresholds.SetPermeability(worldmodel.PermeabilityMedium, worldmodel.QuantileThreshold(w.Permeability, w.Ocean, 0.25))
}
