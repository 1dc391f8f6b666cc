package pipeline

import (
	"math/rand"

	"worldcore/internal/noise"
	"worldcore/internal/rng"
	"worldcore/internal/worldmodel"
)

const (
	distanceToSunHWHM = 0.12
	axialTiltHWHM     = 0.07
)

// BuildTemperature derives the temperature layer from latitude, layered
// noise, a per-world distance-to-sun and axial-tilt draw, and an altitude
// falloff above the mountain threshold.
func BuildTemperature(w *worldmodel.World, seed int64) {
	src := rand.New(rand.NewSource(seed))

	distanceToSun := rng.NormalHWHM(src, 1.0, distanceToSunHWHM)
	if distanceToSun < 0.1 {
		distanceToSun = 0.1
	}
	distanceToSun *= distanceToSun

	axialTilt := rng.Clamp(rng.NormalHWHM(src, 0, axialTiltHWHM), -0.5, 0.5)

	gen := noise.New(seed)
	const octaves = 8
	frequency := float64(octaves * 16)

	mountain := float64(w.Thresholds.Elevation(worldmodel.ElevationMountain))

	w.Temperature = worldmodel.NewFloatGrid(w.Width, w.Height)

	for y := 0; y < w.Height; y++ {
		normY := float64(y)/float64(w.Height) - 0.5
		latitude := worldmodel.Interp([][2]float64{
			{axialTilt - 0.5, 0},
			{axialTilt, 1},
			{axialTilt + 0.5, 0},
		}, normY)

		for x := 0; x < w.Width; x++ {
			n := wrapBlendNoise(gen, float64(x), float64(y), float64(w.Width), float64(w.Height), octaves, frequency)
			t := (latitude*12 + n) / 13 / distanceToSun

			elev := float64(w.Elevation.Get(x, y))
			if elev > mountain {
				if elev > mountain+29 {
					t *= 0.033
				} else {
					t *= 1 - (elev-mountain)/30
				}
			}
			w.Temperature.Set(x, y, float32(t))
		}
	}

	for i, frac := range w.TemperatureBreakpoints {
		w.Thresholds.SetTemperature(worldmodel.TemperatureBand(i), worldmodel.QuantileThreshold(w.Temperature, w.Ocean, frac))
	}
}
