package pipeline

import (
	"math/rand"

	"worldcore/internal/worldmodel"
)

// BuildIcecap freezes cold ocean cells stochastically, biased by how many
// of a cell's neighbors are already solid (land or frozen), so ice sheets
// grow outward from existing cold regions rather than scattering randomly.
func BuildIcecap(w *worldmodel.World, seed int64) {
	src := rand.New(rand.NewSource(seed))
	w.Icecap = worldmodel.NewFloatGrid(w.Width, w.Height)

	minT := minTemperature(w)
	freezeLimit := float64(w.Thresholds.Temperature(worldmodel.TemperaturePolar))
	freezeThreshold := (freezeLimit - minT) * 0.6
	certain := freezeThreshold * 0.8

	solid := worldmodel.NewBoolGrid(w.Width, w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsOcean(x, y) || float64(w.Temperature.Get(x, y))-minT <= certain {
				solid.Set(x, y, true)
			}
		}
	}

	freezePoints := [][2]float64{
		{minT, 1},
		{minT + certain, 1},
		{minT + freezeThreshold, 0},
	}

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsOcean(x, y) {
				continue
			}
			t := float64(w.Temperature.Get(x, y))
			if t-minT >= freezeThreshold {
				continue
			}

			probability := worldmodel.Interp(freezePoints, t)

			if !onOuterBorder(w, x, y) {
				count := countSolidNeighbors(w, solid, x, y)
				neighborBias := worldmodel.Interp([][2]float64{{0, -1}, {8, 1}}, float64(count))
				probability += neighborBias * 0.5
			}

			if src.Float64() <= probability {
				solid.Set(x, y, true)
				w.Icecap.Set(x, y, float32(freezeThreshold-(t-minT)))
			}
		}
	}
}

func minTemperature(w *worldmodel.World) float64 {
	min := float64(w.Temperature.Get(0, 0))
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			v := float64(w.Temperature.Get(x, y))
			if v < min {
				min = v
			}
		}
	}
	return min
}

func onOuterBorder(w *worldmodel.World, x, y int) bool {
	return x == 0 || y == 0 || x == w.Width-1 || y == w.Height-1
}

func countSolidNeighbors(w *worldmodel.World, solid *worldmodel.BoolGrid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.Contains(nx, ny) {
				continue
			}
			if solid.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}
