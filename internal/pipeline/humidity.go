package pipeline

import "worldcore/internal/worldmodel"

// BuildHumidity combines precipitation and irrigation into the humidity
// layer and derives its quantile thresholds from the world's humidity
// break-points.
func BuildHumidity(w *worldmodel.World) {
	w.Humidity = worldmodel.NewFloatGrid(w.Width, w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			p := float64(w.Precipitation.Get(x, y))
			irr := float64(w.Irrigation.Get(x, y))
			w.Humidity.Set(x, y, float32((p-3*irr)/4))
		}
	}

	for i, frac := range w.HumidityBreakpoints {
		w.Thresholds.SetHumidity(worldmodel.HumidityBand(i), worldmodel.QuantileThreshold(w.Humidity, w.Ocean, frac))
	}
}
