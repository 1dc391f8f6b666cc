package pipeline

import "worldcore/internal/worldmodel"

var seaDepthFactors = [5]float64{0.0, 0.3, 0.5, 0.7, 0.9}

// InitOcean floods oceans in from the border, computes the hill/mountain
// elevation quantiles, harmonizes the shallow ocean floor, and derives sea
// depth.
func InitOcean(w *worldmodel.World, oceanLevel float64) {
	w.Ocean = floodFillOcean(w, oceanLevel)

	w.Thresholds.SetElevation(worldmodel.ElevationSea, float32(oceanLevel))
	w.Thresholds.SetElevation(worldmodel.ElevationHill, worldmodel.QuantileThreshold(w.Elevation, w.Ocean, 0.10))
	w.Thresholds.SetElevation(worldmodel.ElevationMountain, worldmodel.QuantileThreshold(w.Elevation, w.Ocean, 0.03))

	harmonizeShallowFloor(w, oceanLevel)

	w.SeaDepth = computeSeaDepth(w, oceanLevel)
}

// floodFillOcean marks every border-reachable, at-or-below-ocean-level cell
// as ocean via an 8-neighbor FIFO flood fill. Interior basins enclosed by
// land are left unmarked.
func floodFillOcean(w *worldmodel.World, oceanLevel float64) *worldmodel.BoolGrid {
	ocean := worldmodel.NewBoolGrid(w.Width, w.Height)
	queue := make([]worldmodel.Point, 0, w.Width+w.Height)

	enqueueIfEligible := func(x, y int) {
		if !w.Contains(x, y) || ocean.Get(x, y) {
			return
		}
		if float64(w.Elevation.Get(x, y)) > oceanLevel {
			return
		}
		ocean.Set(x, y, true)
		queue = append(queue, worldmodel.Point{X: x, Y: y})
	}

	for x := 0; x < w.Width; x++ {
		enqueueIfEligible(x, 0)
		enqueueIfEligible(x, w.Height-1)
	}
	for y := 0; y < w.Height; y++ {
		enqueueIfEligible(0, y)
		enqueueIfEligible(w.Width-1, y)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				enqueueIfEligible(p.X+dx, p.Y+dy)
			}
		}
	}
	return ocean
}

// harmonizeShallowFloor pulls very shallow ocean elevation toward
// shallow/2, softening the floor without flattening it.
func harmonizeShallowFloor(w *worldmodel.World, oceanLevel float64) {
	shallow := 0.85 * oceanLevel
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.Ocean.Get(x, y) {
				continue
			}
			elev := float64(w.Elevation.Get(x, y))
			if elev >= shallow {
				continue
			}
			target := shallow / 2
			w.Elevation.Set(x, y, float32(elev+(target-elev)*0.2))
		}
	}
}

func computeSeaDepth(w *worldmodel.World, oceanLevel float64) *worldmodel.FloatGrid {
	depth := worldmodel.NewFloatGrid(w.Width, w.Height)
	distance := distanceToLand(w)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.Ocean.Get(x, y) {
				continue
			}
			raw := oceanLevel - float64(w.Elevation.Get(x, y))
			d := distance[y*w.Width+x]
			idx := d - 1
			if idx < 0 {
				idx = 0
			}
			if idx >= len(seaDepthFactors) {
				idx = len(seaDepthFactors) - 1
			}
			depth.Set(x, y, float32(raw*seaDepthFactors[idx]))
		}
	}

	depth = smoothSeaDepth(w, depth, 10)
	renormalize(depth)
	return depth
}

// distanceToLand runs a multi-source BFS from every land cell (8-neighbor)
// and returns, per cell, the number of steps to the nearest land cell.
func distanceToLand(w *worldmodel.World) []int {
	dist := make([]int, w.Width*w.Height)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]worldmodel.Point, 0, w.Width*w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.Ocean.Get(x, y) {
				dist[y*w.Width+x] = 0
				queue = append(queue, worldmodel.Point{X: x, Y: y})
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		d := dist[p.Y*w.Width+p.X]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !w.Contains(nx, ny) {
					continue
				}
				idx := ny*w.Width + nx
				if dist[idx] != -1 {
					continue
				}
				dist[idx] = d + 1
				queue = append(queue, worldmodel.Point{X: nx, Y: ny})
			}
		}
	}
	return dist
}

// smoothSeaDepth runs passes of 3x3-average anti-alias smoothing over ocean
// cells, leaving land at zero, and returns the smoothed grid.
func smoothSeaDepth(w *worldmodel.World, depth *worldmodel.FloatGrid, passes int) *worldmodel.FloatGrid {
	for i := 0; i < passes; i++ {
		next := worldmodel.NewFloatGrid(w.Width, w.Height)
		for y := 0; y < w.Height; y++ {
			for x := 0; x < w.Width; x++ {
				if !w.Ocean.Get(x, y) {
					continue
				}
				var sum float64
				var count int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if !w.Contains(nx, ny) {
							continue
						}
						sum += float64(depth.Get(nx, ny))
						count++
					}
				}
				next.Set(x, y, float32(sum/float64(count)))
			}
		}
		depth = next
	}
	return depth
}

// renormalize linearly rescales every value in g to [0, 1] using the grid's
// own min and max.
func renormalize(g *worldmodel.FloatGrid) {
	min, max := float32(0), float32(0)
	first := true
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.Get(x, y)
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if max <= min {
		return
	}
	span := max - min
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, (g.Get(x, y)-min)/span)
		}
	}
}
