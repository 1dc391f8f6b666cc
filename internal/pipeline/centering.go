// Package pipeline wires the generation stages into a single ordered run
// over a worldmodel.World: tectonic ingest, centering, noise, ocean
// initialization, temperature, precipitation, erosion, watermap,
// irrigation, humidity, permeability, biome, and icecap.
package pipeline

import "worldcore/internal/worldmodel"

// CenterLand torus-rotates elevation and plates so the globally lowest
// elevation row sits at y=0 and the globally lowest elevation column sits
// at x=0.
func CenterLand(w *worldmodel.World) {
	minRow := minSumIndex(rowSums(w))
	minCol := minSumIndex(colSums(w))

	w.Elevation = rotateFloat(w.Elevation, minCol, minRow)
	if w.Plates != nil {
		w.Plates = rotateUint16(w.Plates, minCol, minRow)
	}
}

func rowSums(w *worldmodel.World) []float64 {
	sums := make([]float64, w.Height)
	for y := 0; y < w.Height; y++ {
		var s float64
		for x := 0; x < w.Width; x++ {
			s += float64(w.Elevation.Get(x, y))
		}
		sums[y] = s
	}
	return sums
}

func colSums(w *worldmodel.World) []float64 {
	sums := make([]float64, w.Width)
	for x := 0; x < w.Width; x++ {
		var s float64
		for y := 0; y < w.Height; y++ {
			s += float64(w.Elevation.Get(x, y))
		}
		sums[x] = s
	}
	return sums
}

func minSumIndex(sums []float64) int {
	best := 0
	for i, v := range sums {
		if v < sums[best] {
			best = i
		}
	}
	return best
}

// rotateFloat shifts every row left by dx and every column up by dy,
// wrapping on the torus.
func rotateFloat(g *worldmodel.FloatGrid, dx, dy int) *worldmodel.FloatGrid {
	out := worldmodel.NewFloatGrid(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sx := (x + dx) % g.Width()
			sy := (y + dy) % g.Height()
			out.Set(x, y, g.Get(sx, sy))
		}
	}
	return out
}

func rotateUint16(g *worldmodel.Uint16Grid, dx, dy int) *worldmodel.Uint16Grid {
	out := worldmodel.NewUint16Grid(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sx := (x + dx) % g.Width()
			sy := (y + dy) % g.Height()
			out.Set(x, y, g.Get(sx, sy))
		}
	}
	return out
}
