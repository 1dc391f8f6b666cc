package pipeline

import (
	"worldcore/internal/noise"
	"worldcore/internal/worldmodel"
)

// AddElevationNoise layers simplex noise onto the elevation grid, seeded
// deterministically by the pre-pipeline elevation-noise draw.
func AddElevationNoise(w *worldmodel.World, seed int64) {
	gen := noise.New(seed)
	const octaves = 6
	const frequency = 1.0 / 64.0

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			n := gen.Octave2(float64(x), float64(y), octaves, frequency)
			w.Elevation.Set(x, y, w.Elevation.Get(x, y)+float32(n)*0.3)
		}
	}
}

// FadeBorders attenuates elevation within margin cells of every edge,
// linearly scaling toward the ocean level as the border is approached. No-op
// if margin <= 0.
func FadeBorders(w *worldmodel.World, margin int, oceanLevel float64) {
	if margin <= 0 {
		return
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			d := edgeDistance(x, y, w.Width, w.Height)
			if d >= margin {
				continue
			}
			factor := float64(d) / float64(margin)
			cur := float64(w.Elevation.Get(x, y))
			faded := oceanLevel + (cur-oceanLevel)*factor
			w.Elevation.Set(x, y, float32(faded))
		}
	}
}

func edgeDistance(x, y, width, height int) int {
	d := x
	if width-1-x < d {
		d = width - 1 - x
	}
	if y < d {
		d = y
	}
	if height-1-y < d {
		d = height - 1 - y
	}
	return d
}
